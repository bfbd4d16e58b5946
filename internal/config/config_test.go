package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ottotimer.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != Default() {
		t.Fatalf("expected defaults, got %+v", got)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeFile(t, "default_seconds: 90\ntick_ms: 500\naudio: malgo\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.DefaultSeconds != 90 {
		t.Fatalf("expected 90 default seconds, got %d", got.DefaultSeconds)
	}
	if got.TickInterval != 500*time.Millisecond {
		t.Fatalf("expected 500ms tick, got %s", got.TickInterval)
	}
	if got.Audio != "malgo" {
		t.Fatalf("expected malgo, got %q", got.Audio)
	}
	if got.VoicePollInterval != Default().VoicePollInterval {
		t.Fatalf("unset key should keep default, got %s", got.VoicePollInterval)
	}
}

func TestLoadZeroSecondsIsKept(t *testing.T) {
	got, err := Load(writeFile(t, "default_seconds: 0\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.DefaultSeconds != 0 {
		t.Fatalf("explicit zero should override the default, got %d", got.DefaultSeconds)
	}
}

func TestLoadInvalidYaml(t *testing.T) {
	_, err := Load(writeFile(t, "tick_ms: [oops\n"))
	if err == nil || !strings.Contains(err.Error(), "parse settings yaml") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAudio:          "none",
		EnvDefaultSeconds: "15",
		EnvLogFile:        "stderr",
		EnvLogLevel:       "verbose",
	}
	s := Default()
	if err := s.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if s.Audio != "none" || s.DefaultSeconds != 15 || s.LogFile != "stderr" || s.LogLevel != "verbose" {
		t.Fatalf("env not applied: %+v", s)
	}

	env[EnvDefaultSeconds] = "-3"
	if err := s.ApplyEnv(func(k string) string { return env[k] }); err == nil {
		t.Fatal("expected error for negative default seconds")
	}
}

func TestSetDefaultSeconds(t *testing.T) {
	tests := []struct {
		in      int64
		want    uint32
		wantErr bool
	}{
		{0, 0, false},
		{90, 90, false},
		{4294967295, 4294967295, false},
		{4294967296, 0, true},
		{4294967356, 0, true},
		{-1, 0, true},
	}

	for _, tt := range tests {
		s := Default()
		err := s.SetDefaultSeconds(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("SetDefaultSeconds(%d): expected error, got %d", tt.in, s.DefaultSeconds)
			}
			if s.DefaultSeconds != Default().DefaultSeconds {
				t.Fatalf("SetDefaultSeconds(%d): value changed to %d on error", tt.in, s.DefaultSeconds)
			}
			continue
		}
		if err != nil {
			t.Fatalf("SetDefaultSeconds(%d): unexpected error: %v", tt.in, err)
		}
		if s.DefaultSeconds != tt.want {
			t.Fatalf("SetDefaultSeconds(%d) = %d, want %d", tt.in, s.DefaultSeconds, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"ok", func(*Settings) {}, ""},
		{"zero tick", func(s *Settings) { s.TickInterval = 0 }, "tick interval"},
		{"zero poll", func(s *Settings) { s.VoicePollInterval = 0 }, "voice poll"},
		{"negative settle", func(s *Settings) { s.SettleInterval = -time.Millisecond }, "settle"},
		{"bad backend", func(s *Settings) { s.Audio = "pulse" }, "unknown audio backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
