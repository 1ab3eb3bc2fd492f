package biglist

import (
	"log/slog"

	"github.com/hupe1980/biglist/internal/partition"
	"github.com/hupe1980/biglist/resource"
)

type options struct {
	policy             Policy
	maxSegmentCapacity int
	memory             *resource.Controller
	metricsCollector   MetricsCollector
	logger             *Logger
}

// Option configures a List at construction.
type Option func(*options)

// WithPolicy selects the edge-case policy. The default is the Policy of
// ActiveConfig.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithMaxSegmentCapacity bounds the number of elements per segment.
// Values below MinMaxSegmentCapacity make the constructor fail with
// ErrInvalidConfig. The default is DefaultMaxSegmentCapacity of ActiveConfig.
func WithMaxSegmentCapacity(n int) Option {
	return func(o *options) {
		o.maxSegmentCapacity = n
	}
}

// WithConfig applies both fields of cfg.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.policy = cfg.Policy
		o.maxSegmentCapacity = cfg.DefaultMaxSegmentCapacity
	}
}

// WithMemoryController accounts every segment buffer against rc. Several
// lists may share one controller to enforce a common budget.
func WithMemoryController(rc *resource.Controller) Option {
	return func(o *options) {
		o.memory = rc
	}
}

// WithMemoryLimit caps the bytes held by segment buffers with a new
// controller. Lists derived from this one through GetRange, FindAll or
// ConvertAll share that controller and therefore the same budget.
//
// Example:
//
//	l, _ := biglist.New[int64](biglist.WithMemoryLimit(64 << 20))
//	err := l.AddRange(values)
//	if errors.Is(err, biglist.ErrCapacity) { ... }
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memory = resource.NewController(resource.Config{MemoryLimitBytes: bytes})
	}
}

// WithMetricsCollector configures a metrics collector for structural events.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &biglist.BasicMetricsCollector{}
//	l, _ := biglist.New[int](biglist.WithMetricsCollector(metrics))
//	// ... use l ...
//	stats := metrics.GetStats()
//	fmt.Printf("Splits: %d, Merges: %d\n", stats.Splits, stats.Merges)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for bulk operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := biglist.NewJSONLogger(slog.LevelDebug)
//	l, _ := biglist.New[int](biglist.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	cfg := ActiveConfig()
	o := options{
		policy:             cfg.Policy,
		maxSegmentCapacity: cfg.DefaultMaxSegmentCapacity,
		metricsCollector:   NoopMetricsCollector{},
		logger:             NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

// partitionConfig translates the options into a partition configuration.
func (o options) partitionConfig() partition.Config {
	return partition.Config{
		MaxSegmentCapacity: o.maxSegmentCapacity,
		Memory:             o.memory,
		Observer:           observer{mc: o.metricsCollector},
		Logger:             o.logger.Logger,
	}
}
