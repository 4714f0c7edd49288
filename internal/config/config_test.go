package config_test

import (
	"strings"
	"testing"

	"tsmls/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.CandidateRoot != "." {
		t.Errorf("unexpected candidate root %q", cfg.CandidateRoot)
	}
	if cfg.TargetIdentifier != "folders" {
		t.Errorf("unexpected target identifier %q", cfg.TargetIdentifier)
	}
	if cfg.MatchLimit != 15 {
		t.Errorf("unexpected match limit %d", cfg.MatchLimit)
	}
	if cfg.TriggerMode != config.TriggerLiteral {
		t.Errorf("unexpected trigger mode %q", cfg.TriggerMode)
	}
	if cfg.Severity != "error" {
		t.Errorf("unexpected severity %q", cfg.Severity)
	}
}

func TestOverlay(t *testing.T) {
	options := map[string]any{
		"suggestions_dir": "/tmp/folders",
		"match_limit":     5,
	}
	cfg, err := config.Overlay(config.Default(), options)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CandidateRoot != "/tmp/folders" {
		t.Errorf("expected overlaid root, got %q", cfg.CandidateRoot)
	}
	if cfg.MatchLimit != 5 {
		t.Errorf("expected overlaid limit, got %d", cfg.MatchLimit)
	}
	// Absent fields keep their values.
	if cfg.TargetIdentifier != "folders" {
		t.Errorf("expected default identifier, got %q", cfg.TargetIdentifier)
	}
}

func TestOverlayNil(t *testing.T) {
	cfg, err := config.Overlay(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != config.Default() {
		t.Errorf("expected defaults unchanged, got %+v", cfg)
	}
}

func TestLoadFromJSON(t *testing.T) {
	cfg, err := config.LoadFromJSON(strings.NewReader(
		`{"trigger_mode": "line", "trigger_prefix": "abc"}`,
	))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TriggerMode != config.TriggerLine || cfg.TriggerPrefix != "abc" {
		t.Errorf("unexpected config %+v", cfg)
	}
}
