package model

import "time"

// Config is the full runtime configuration, loadable from
// ~/.mashaer/config.yaml, MASHAER_* environment variables, or CLI flags.
type Config struct {
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Inference InferenceConfig `yaml:"inference" mapstructure:"inference"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
	Lexicon   LexiconConfig   `yaml:"lexicon" mapstructure:"lexicon"`
}

// LogConfig controls slog output. When File is set, logs are teed to a
// rotated file in addition to stdout.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"`
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Addr         string        `yaml:"addr" mapstructure:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// InferenceConfig configures the external sentiment endpoint.
type InferenceConfig struct {
	Provider          string        `yaml:"provider" mapstructure:"provider"` // huggingface, openai, gemini
	Endpoint          string        `yaml:"endpoint" mapstructure:"endpoint"`
	Token             string        `yaml:"token" mapstructure:"token"`
	Model             string        `yaml:"model" mapstructure:"model"`
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	CacheTTL          time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"` // postgres or memory
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// BatchConfig bounds one batch invocation.
type BatchConfig struct {
	PageSize     int `yaml:"page_size" mapstructure:"page_size"`
	Workers      int `yaml:"workers" mapstructure:"workers"`
	QualityFloor int `yaml:"quality_floor" mapstructure:"quality_floor"`
}

// LexiconConfig points at an optional external table file. Empty means the
// built-in Levantine tables.
type LexiconConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 120 * time.Second,
		},
		Inference: InferenceConfig{
			Provider:          "huggingface",
			Timeout:           30 * time.Second,
			CacheTTL:          1 * time.Hour,
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Store: StoreConfig{
			Driver: "postgres",
		},
		Batch: BatchConfig{
			PageSize:     20,
			Workers:      4,
			QualityFloor: 10,
		},
	}
}
