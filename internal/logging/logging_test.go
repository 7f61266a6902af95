package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"ERROR":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitSetsDefault(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	Init(true, slog.LevelWarn)
	if slog.Default().Enabled(nil, slog.LevelDebug) {
		t.Fatal("expected debug to be disabled at warn level")
	}
	if !slog.Default().Enabled(nil, slog.LevelError) {
		t.Fatal("expected error to be enabled at warn level")
	}
}
