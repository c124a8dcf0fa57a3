// internal/config/config.go
package config

type Config struct {
	Replicator ReplicatorConfig `yaml:"replicator"`
}

type ReplicatorConfig struct {
	// Device status block (written into every target)
	DeviceName string `yaml:"device_name"`

	Source  SourceConfig   `yaml:"source"`
	Targets []TargetConfig `yaml:"targets"`
	Log     LogConfig      `yaml:"log"`
}

// ---- SOURCE ----

const (
	SourcePortAudio = "portaudio"
	SourceWAV       = "wav"
)

type SourceConfig struct {
	Kind string `yaml:"kind"`

	// portaudio
	Device     string  `yaml:"device"` // input device name; empty => default input
	SampleRate float64 `yaml:"sample_rate"`

	// wav
	Path     string `yaml:"path"`
	Realtime bool   `yaml:"realtime"` // pace buffers at the file's sample rate

	FramesPerBuffer int `yaml:"frames_per_buffer"`
}

// ---- TARGET ----

const (
	TransportModbus = "modbus"
	TransportIngest = "ingest"
)

type TargetConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Transport string `yaml:"transport"` // modbus (default) | ingest
	UnitID    uint8  `yaml:"unit_id"`
	BaseSlot  uint16 `yaml:"base_slot"` // status block index; address = base_slot * 20
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- LOG ----

type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json | logfmt
	File   string `yaml:"file"`   // strftime pattern; empty => stderr
}
