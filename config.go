package pulse

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nbj/pulse/internal/identity"
	"github.com/nbj/pulse/proxy"
	"github.com/nbj/pulse/types"
)

// Config is the configuration for the Scheduler.
//
// All duration fields accept standard Go duration strings like "100ms",
// "1s" in YAML form.
type Config struct {
	// Interval selects the dispatch cadence of the job
	// (second|minute|hour|day|everyTick).
	Interval types.Interval `yaml:"interval"`

	// CyclePadding is the target duration of one polling cycle. After each
	// cycle's work the loop sleeps whatever remains of this duration, so a
	// slow job eats into its own padding instead of delaying the schedule.
	// Must be positive unless Interval is IntervalEveryTick.
	//
	// The padding bounds polling resolution: with the default 100ms the
	// loop checks the clock ten times per second, comfortably inside the
	// one-second buckets the schedule is built on.
	CyclePadding time.Duration `yaml:"cyclePadding"`

	// EmitTelemetry records per-cycle processing time on the metrics
	// collector and the debug log.
	EmitTelemetry bool `yaml:"emitTelemetry"`

	// Proxy configures the publish connection used by the heartbeat
	// emitter and any job-owned publishers.
	Proxy proxy.Config `yaml:"proxy"`
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting Go duration strings
// like "100ms" for CyclePadding.
func (cfg *Config) UnmarshalYAML(node *yaml.Node) error {
	type rawConfig struct {
		Interval      types.Interval `yaml:"interval"`
		CyclePadding  string         `yaml:"cyclePadding"`
		EmitTelemetry bool           `yaml:"emitTelemetry"`
		Proxy         proxy.Config   `yaml:"proxy"`
	}

	var raw rawConfig
	if err := node.Decode(&raw); err != nil {
		return err
	}

	cfg.Interval = raw.Interval
	cfg.EmitTelemetry = raw.EmitTelemetry
	cfg.Proxy = raw.Proxy

	if raw.CyclePadding != "" {
		d, err := time.ParseDuration(raw.CyclePadding)
		if err != nil {
			return fmt.Errorf("parse cyclePadding: %w", err)
		}
		cfg.CyclePadding = d
	}

	return nil
}

// DefaultConfig returns a Config with production defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Interval:     types.IntervalSecond,
		CyclePadding: 100 * time.Millisecond,
		Proxy: proxy.Config{
			Host:        "proxy",
			Port:        5557,
			ServiceName: "pulse",
			SettleDelay: proxy.DefaultSettleDelay,
		},
	}
}

// SetDefaults fills in missing configuration values with production
// defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.CyclePadding == 0 && cfg.Interval != types.IntervalEveryTick {
		cfg.CyclePadding = defaults.CyclePadding
	}
	if cfg.Proxy.Host == "" {
		cfg.Proxy.Host = defaults.Proxy.Host
	}
	if cfg.Proxy.Port == 0 {
		cfg.Proxy.Port = defaults.Proxy.Port
	}
	if cfg.Proxy.ServiceName == "" {
		cfg.Proxy.ServiceName = defaults.Proxy.ServiceName
	}
	if cfg.Proxy.SettleDelay == 0 {
		cfg.Proxy.SettleDelay = defaults.Proxy.SettleDelay
	}
	if cfg.Proxy.Identity == "" {
		cfg.Proxy.Identity = identity.Default(cfg.Proxy.ServiceName)
	}
}

// Validate checks configuration constraints and returns an error for
// invalid values.
//
// Hard Validation Rules:
//   - CyclePadding > 0 unless Interval is IntervalEveryTick
//   - Proxy.Port within the valid TCP port range
//
// Returns:
//   - error: Wrapped ErrInvalidConfig explaining the violation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Interval != types.IntervalEveryTick && cfg.CyclePadding <= 0 {
		return fmt.Errorf("%w: CyclePadding (%v) must be positive for interval %s",
			ErrInvalidConfig, cfg.CyclePadding, cfg.Interval)
	}

	if cfg.CyclePadding < 0 {
		return fmt.Errorf("%w: CyclePadding (%v) must not be negative",
			ErrInvalidConfig, cfg.CyclePadding)
	}

	if cfg.Proxy.Port < 1 || cfg.Proxy.Port > 65535 {
		return fmt.Errorf("%w: proxy port %d out of range", ErrInvalidConfig, cfg.Proxy.Port)
	}

	return nil
}

// TestConfig returns a configuration optimized for fast test execution.
//
// Timings are orders of magnitude faster than production defaults so
// tests iterate quickly. Use DefaultConfig() for deployments.
//
// Returns:
//   - Config: Configuration with fast timings for tests
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.CyclePadding = time.Millisecond
	cfg.Proxy.Host = "127.0.0.1"
	cfg.Proxy.ServiceName = "pulse-test"
	cfg.Proxy.SettleDelay = time.Millisecond

	return cfg
}

// LoadConfig reads a YAML configuration file, applies defaults and
// validates the result.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - Config: Parsed, defaulted and validated configuration
//   - error: Read, parse or validation error
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
