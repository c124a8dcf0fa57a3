// internal/config/normalize.go
package config

import "github.com/tamzrod/stackmat-replicator/internal/status"

// Defaults applied by Normalize.
const (
	DefaultSampleRate      = 44100
	DefaultFramesPerBuffer = 8192
	DefaultTimeoutMs       = 1000
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	r := &cfg.Replicator

	// Normalize device_name:
	// - ASCII already validated
	// - Truncate to max 16 characters
	if len(r.DeviceName) > status.DeviceNameMaxChars {
		r.DeviceName = r.DeviceName[:status.DeviceNameMaxChars]
	}

	if r.Source.Kind == SourcePortAudio && r.Source.SampleRate == 0 {
		r.Source.SampleRate = DefaultSampleRate
	}
	if r.Source.FramesPerBuffer == 0 {
		r.Source.FramesPerBuffer = DefaultFramesPerBuffer
	}

	for i := range r.Targets {
		t := &r.Targets[i]
		if t.Transport == "" {
			t.Transport = TransportModbus
		}
		if t.TimeoutMs == 0 {
			t.TimeoutMs = DefaultTimeoutMs
		}
	}

	if r.Log.Level == "" {
		r.Log.Level = DefaultLogLevel
	}
	if r.Log.Format == "" {
		r.Log.Format = DefaultLogFormat
	}
}
