// internal/config/validate.go
package config

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"

	"github.com/tamzrod/stackmat-replicator/internal/status"
)

// maxBaseSlot is the highest base_slot whose status block still fits in the
// 16-bit register address space.
const maxBaseSlot = (65536 / status.SlotsPerDevice) - 1

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}
	r := cfg.Replicator

	// device_name sanity (ASCII only)
	for i := 0; i < len(r.DeviceName); i++ {
		if r.DeviceName[i] > 0x7F {
			return fmt.Errorf("device_name must contain ASCII characters only")
		}
	}

	if err := validateSource(r.Source); err != nil {
		return err
	}

	// ------------------------------------------------------------
	// TARGET STATUS BLOCK VALIDATION
	// ------------------------------------------------------------

	// key = endpoint | unit_id | base_slot
	owner := make(map[string]int)

	for i, t := range r.Targets {
		if t.Endpoint == "" {
			return fmt.Errorf("target %d: endpoint required", i)
		}

		switch t.Transport {
		case "", TransportModbus, TransportIngest:
		default:
			return fmt.Errorf("target %d (%s): unknown transport %q", i, t.Endpoint, t.Transport)
		}

		if t.TimeoutMs < 0 {
			return fmt.Errorf("target %d (%s): timeout_ms must be >= 0", i, t.Endpoint)
		}

		if t.BaseSlot > maxBaseSlot {
			return fmt.Errorf(
				"target %d (%s): base_slot %d out of range (max %d)",
				i, t.Endpoint, t.BaseSlot, maxBaseSlot,
			)
		}

		key := fmt.Sprintf("%s|%d|%d", t.Endpoint, t.UnitID, t.BaseSlot)
		if prev, exists := owner[key]; exists {
			return fmt.Errorf(
				"base_slot collision: endpoint=%s unit_id=%d slot=%d used by targets %d and %d",
				t.Endpoint,
				t.UnitID,
				t.BaseSlot,
				prev,
				i,
			)
		}
		owner[key] = i
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	if r.Log.Level != "" {
		if _, err := log.ParseLevel(r.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}

	switch r.Log.Format {
	case "", "text", "json", "logfmt":
	default:
		return fmt.Errorf("log.format: unknown format %q", r.Log.Format)
	}

	if r.Log.File != "" {
		if _, err := strftime.New(r.Log.File); err != nil {
			return fmt.Errorf("log.file: %w", err)
		}
	}

	return nil
}

func validateSource(s SourceConfig) error {
	switch s.Kind {
	case SourcePortAudio:
		// sample_rate 0 is defaulted by Normalize
		if math.IsNaN(s.SampleRate) || math.IsInf(s.SampleRate, 0) || s.SampleRate < 0 {
			return fmt.Errorf("source: sample_rate must be > 0")
		}
	case SourceWAV:
		if s.Path == "" {
			return fmt.Errorf("source: wav requires path")
		}
	case "":
		return fmt.Errorf("source: kind required (%s | %s)", SourcePortAudio, SourceWAV)
	default:
		return fmt.Errorf("source: unknown kind %q", s.Kind)
	}

	if s.FramesPerBuffer < 0 {
		return fmt.Errorf("source: frames_per_buffer must be >= 0")
	}

	return nil
}
