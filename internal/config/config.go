package config

import (
	"encoding/json"
	"fmt"
	"io"
)

// Trigger modes for the completion provider. The modes are mutually
// exclusive.
const (
	// TriggerLiteral offers completions when the cursor sits strictly inside
	// a string element of the target array.
	TriggerLiteral = "literal"
	// TriggerLine is the legacy mode: completions are offered on the first
	// line containing the configured prefix.
	TriggerLine = "line"
)

// Config carries all externally supplied settings. It is built once at
// startup and passed into every component that needs it.
type Config struct {
	// CandidateRoot is the directory whose entries form the candidate set.
	CandidateRoot string `json:"suggestions_dir"`
	// TargetIdentifier is the variable name whose array literal is checked.
	TargetIdentifier string `json:"target_identifier"`
	// MatchLimit caps the number of quick-fix suggestions per diagnostic.
	MatchLimit int `json:"match_limit"`
	// TriggerMode selects the completion trigger, TriggerLiteral or
	// TriggerLine.
	TriggerMode string `json:"trigger_mode"`
	// TriggerPrefix is the substring searched for in TriggerLine mode.
	TriggerPrefix string `json:"trigger_prefix"`
	// Severity is the diagnostic severity policy: "error", "warning",
	// "information" or "hint".
	Severity string `json:"severity"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CandidateRoot:    ".",
		TargetIdentifier: "folders",
		MatchLimit:       15,
		TriggerMode:      TriggerLiteral,
		TriggerPrefix:    "xyz",
		Severity:         "error",
	}
}

// Overlay merges the fields present in v (typically the client's
// initializationOptions) over cfg. Fields absent from v keep their value.
func Overlay(cfg Config, v any) (Config, error) {
	if v == nil {
		return cfg, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal source: %w", err)
	}

	// only fields present in data will overwrite.
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal into Config: %w", err)
	}

	return cfg, nil
}

// LoadFromJSON reads JSON from r over the default configuration.
func LoadFromJSON(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
