// ottotimer is a terminal countdown timer with an audible alarm.
//
// Usage:
//
//	ottotimer [-config ottotimer.yaml] [-seconds N] [-audio oto|malgo|none] [-verbose] [-quiet]
//
// Keys: space starts, e edits the duration (Enter commits, Esc leaves),
// Ctrl+Q quits.
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/ottotimer/internal/audio"
	"github.com/hammamikhairi/ottotimer/internal/clock"
	"github.com/hammamikhairi/ottotimer/internal/config"
	"github.com/hammamikhairi/ottotimer/internal/display"
	"github.com/hammamikhairi/ottotimer/internal/domain"
	"github.com/hammamikhairi/ottotimer/internal/engine"
	"github.com/hammamikhairi/ottotimer/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	configPath := flag.String("config", config.DefaultPath, "YAML settings file (missing file = defaults)")
	seconds := flag.Int64("seconds", -1, "initial countdown length in seconds (overrides settings)")
	audioBackend := flag.String("audio", "", "audio backend: oto, malgo or none (overrides settings)")
	logFile := flag.String("log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if err := settings.ApplyEnv(os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if *seconds >= 0 {
		if err := settings.SetDefaultSeconds(*seconds); err != nil {
			fmt.Fprintf(os.Stderr, "error: -seconds: %v\n", err)
			return 1
		}
	}
	if *audioBackend != "" {
		settings.Audio = *audioBackend
	}
	if *logFile != "" {
		settings.LogFile = *logFile
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	// Configure logger.
	logLevel, err := logger.ParseLevel(settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using normal)\n", err)
	}
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Logs go to a file by default; the terminal belongs to the UI.
	logOut, closeLog := openLogOutput(settings.LogFile, os.Stderr)
	defer closeLog()

	// Audio libraries may log through the standard logger.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	if !display.IsTerminal() {
		fmt.Fprintln(os.Stderr, "error: ottotimer needs an interactive terminal")
		return 1
	}

	cues, err := audio.Open(settings.Audio, log)
	if err != nil {
		log.Error("audio init failed: %v", err)
		fmt.Fprintf(os.Stderr, "error: audio init failed: %v (try -audio none)\n", err)
		return 1
	}
	defer cues.Close()
	log.Info("audio backend: %s", settings.Audio)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ui := display.NewUI(log)
	eng := engine.New(clock.Real{}, cues, ui, ui, log,
		engine.WithTickInterval(settings.TickInterval),
		engine.WithVoicePollInterval(settings.VoicePollInterval),
		engine.WithSettleInterval(settings.SettleInterval),
	)
	state := domain.NewAppState(settings.DefaultSeconds)

	// Run the control loop in the background; quitting it ends the UI.
	loopErr := make(chan error, 1)
	go func() {
		ui.WaitReady()
		loopErr <- eng.Run(ctx, state)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal and blocks until quit.
	code := 0
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
		fmt.Fprintf(os.Stderr, "error: display: %v\n", err)
		code = 1
	}
	cancel()

	select {
	case err := <-loopErr:
		if err != nil {
			log.Error("control loop: %v", err)
			code = 1
		}
	default:
		// The loop is still inside a countdown or alarm wait; the
		// process exits without it.
	}
	return code
}
