package vecstore

import (
	"log/slog"

	"github.com/hupe1980/vecstore/codec"
	"github.com/hupe1980/vecstore/columnar"
)

type options struct {
	codec            codec.Codec
	compression      columnar.Compression
	metricsCollector MetricsCollector
	logger           *Logger
	searchWorkers    int
}

// Option configures a Store.
type Option func(*options)

// WithCodec configures the codec used to encode the metadata column on Save.
// Load picks the codec recorded in the file.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the Parquet page compression used by Save.
// The default is columnar.CompressionZstd.
func WithCompression(c columnar.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithSearchWorkers sets how many goroutines Search may use to score a
// large store. Stores smaller than 2048 items are always scanned on the
// calling goroutine. Values below 1 mean 1 (the default).
//
// Results are identical for any worker count.
func WithSearchWorkers(n int) Option {
	return func(o *options) {
		o.searchWorkers = max(n, 1)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vecstore.BasicMetricsCollector{}
//	s := vecstore.New(vecstore.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	s := vecstore.New(vecstore.WithLogger(vecstore.NewJSONLogger(slog.LevelInfo)))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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
	o := options{
		codec:            codec.Default,
		compression:      columnar.CompressionZstd,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		searchWorkers:    1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
