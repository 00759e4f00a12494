package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ReviewDelay != 45*time.Second {
		t.Fatalf("review delay = %v, want %v", cfg.ReviewDelay, 45*time.Second)
	}
	if cfg.RetentionWindow != 17520*time.Hour {
		t.Fatalf("retention window = %v, want two years in hours", cfg.RetentionWindow)
	}
	if cfg.SnapshotBackend != "bbolt" {
		t.Fatalf("snapshot backend = %q, want %q", cfg.SnapshotBackend, "bbolt")
	}
	if cfg.DBPath != "data/intake.db" {
		t.Fatalf("db path = %q, want %q", cfg.DBPath, "data/intake.db")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("INTAKE_REVIEW_DELAY", "250ms")
	t.Setenv("INTAKE_SNAPSHOT_BACKEND", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ReviewDelay != 250*time.Millisecond {
		t.Fatalf("review delay = %v, want %v", cfg.ReviewDelay, 250*time.Millisecond)
	}
	if cfg.SnapshotBackend != "memory" {
		t.Fatalf("snapshot backend = %q, want %q", cfg.SnapshotBackend, "memory")
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("INTAKE_REVIEW_DELAY", "not-a-duration")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
