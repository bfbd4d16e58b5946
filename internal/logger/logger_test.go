package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"QUIET", LevelOff, false},
		{"", LevelNormal, false},
		{"normal", LevelNormal, false},
		{"info", LevelNormal, false},
		{" verbose ", LevelVerbose, false},
		{"debug", LevelVerbose, false},
		{"loud", LevelNormal, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseLevel(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLevel(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLevelsGateOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelNormal, &buf)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at normal level: %q", out)
	}
	if !strings.Contains(out, "[INF]") || !strings.Contains(out, "shown 2") {
		t.Fatalf("expected info line, got %q", out)
	}

	buf.Reset()
	log.SetLevel(LevelOff)
	log.Error("nope")
	if buf.Len() != 0 {
		t.Fatalf("expected no output when off, got %q", buf.String())
	}

	log.SetLevel(LevelVerbose)
	log.Debug("now visible")
	if !strings.Contains(buf.String(), "[DBG] ") {
		t.Fatalf("expected debug line at verbose level, got %q", buf.String())
	}
}

func TestEachLineCarriesOneTag(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelVerbose, &buf)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{"[DBG] d", "[INF] i", "[WRN] w", "[ERR] e"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, w := range want {
		if !strings.HasSuffix(lines[i], w) {
			t.Fatalf("line %d = %q, want suffix %q", i, lines[i], w)
		}
	}
}

func TestSetLevelWhileLogging(t *testing.T) {
	var mu sync.Mutex
	var buf bytes.Buffer
	log := New(LevelNormal, lockedWriter{&mu, &buf})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				log.Info("tick %d", j)
			}
		}()
	}
	for j := 0; j < 50; j++ {
		log.SetLevel(Level(j % 3))
	}
	wg.Wait()
}

type lockedWriter struct {
	mu  *sync.Mutex
	buf *bytes.Buffer
}

func (w lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}
