package biglist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/tailscale/hujson"

	"github.com/hupe1980/biglist/internal/partition"
)

// Environment variables read once, on first use of the process default.
const (
	EnvPolicy             = "BIGLIST_POLICY"
	EnvMaxSegmentCapacity = "BIGLIST_MAX_SEGMENT_CAPACITY"
	EnvConfigFile         = "BIGLIST_CONFIG"
)

const (
	// DefaultMaxSegmentCapacity is the built-in segment size limit.
	DefaultMaxSegmentCapacity = partition.DefaultMaxSegmentCapacity
	// MinMaxSegmentCapacity is the smallest accepted segment size limit.
	MinMaxSegmentCapacity = partition.MinMaxSegmentCapacity
)

// Policy selects how ambiguous range edge cases are handled.
type Policy int

const (
	// PolicyConsistent validates every explicit start/count pair, including
	// on an empty list.
	PolicyConsistent Policy = iota
	// PolicyLegacy lets ranged backward searches on an empty list return -1
	// the way the historical platform list did.
	PolicyLegacy
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyConsistent:
		return "consistent"
	case PolicyLegacy:
		return "legacy"
	default:
		return "Policy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePolicy parses a policy name, case-insensitively.
func ParsePolicy(s string) (Policy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "consistent", "strict":
		return PolicyConsistent, true
	case "legacy", "legacy-compatible", "compat":
		return PolicyLegacy, true
	default:
		return 0, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if p != PolicyConsistent && p != PolicyLegacy {
		return nil, fmt.Errorf("%w: unknown policy %d", ErrInvalidConfig, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	v, ok := ParsePolicy(string(text))
	if !ok {
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, text)
	}
	*p = v
	return nil
}

// Config is the process-wide default configuration.
type Config struct {
	Policy                    Policy `json:"policy"`
	DefaultMaxSegmentCapacity int    `json:"default_max_segment_capacity"` //nolint:tagliatelle // snake_case for config file
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Policy:                    PolicyConsistent,
		DefaultMaxSegmentCapacity: DefaultMaxSegmentCapacity,
	}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if c.Policy != PolicyConsistent && c.Policy != PolicyLegacy {
		return fmt.Errorf("%w: unknown policy %d", ErrInvalidConfig, int(c.Policy))
	}
	if c.DefaultMaxSegmentCapacity < MinMaxSegmentCapacity {
		return fmt.Errorf("%w: max segment capacity %d below %d",
			ErrInvalidConfig, c.DefaultMaxSegmentCapacity, MinMaxSegmentCapacity)
	}
	return nil
}

var (
	activeOnce sync.Once
	active     atomic.Pointer[Config]
)

// ActiveConfig returns the process default configuration. On first use it is
// read from the HuJSON file named by BIGLIST_CONFIG and then overridden by
// BIGLIST_POLICY and BIGLIST_MAX_SEGMENT_CAPACITY. Unusable values are logged
// through slog.Default and ignored.
func ActiveConfig() Config {
	activeOnce.Do(func() {
		cfg := loadEnvConfig(os.LookupEnv, &Logger{Logger: slog.Default()})
		active.CompareAndSwap(nil, &cfg)
	})
	return *active.Load()
}

// SetDefaultConfig replaces the process default configuration used by lists
// created afterwards.
func SetDefaultConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	activeOnce.Do(func() {})
	active.Store(&cfg)
	return nil
}

// LoadConfigFile reads a JSON configuration file. Comments and trailing
// commas are accepted. Fields missing from the file keep their built-in
// defaults.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

func parseConfig(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	cfg := DefaultConfig()
	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadEnvConfig builds the process default from the environment.
func loadEnvConfig(lookup func(string) (string, bool), log *Logger) Config {
	ctx := context.Background()
	cfg := DefaultConfig()

	if path, ok := lookup(EnvConfigFile); ok && path != "" {
		fileCfg, err := LoadConfigFile(path)
		log.LogConfig(ctx, EnvConfigFile, fileCfg, err)
		if err == nil {
			cfg = fileCfg
		}
	}

	if s, ok := lookup(EnvPolicy); ok && s != "" {
		if p, ok := ParsePolicy(s); ok {
			cfg.Policy = p
		} else {
			log.LogConfig(ctx, EnvPolicy, cfg, fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, s))
		}
	}

	if s, ok := lookup(EnvMaxSegmentCapacity); ok && s != "" {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		switch {
		case err != nil:
			log.LogConfig(ctx, EnvMaxSegmentCapacity, cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
		case n < MinMaxSegmentCapacity:
			log.LogConfig(ctx, EnvMaxSegmentCapacity, cfg,
				fmt.Errorf("%w: max segment capacity %d below %d", ErrInvalidConfig, n, MinMaxSegmentCapacity))
		default:
			cfg.DefaultMaxSegmentCapacity = n
		}
	}
	return cfg
}
