package libloc

import "log/slog"

// Option configures a Locations handle at Open time.
type Option func(*locationsConfig)

type locationsConfig struct {
	logger          *slog.Logger
	logFile         string
	logFileMaxSizeM int
	logFileBackups  int
	logLevel        slog.Level
	metricsEnabled  bool
}

// WithLogger sets the slog.Logger diagnostics are written to. It takes
// precedence over WithLogFile if both are given.
func WithLogger(l *slog.Logger) Option {
	return func(c *locationsConfig) { c.logger = l }
}

// WithLogFile directs diagnostics to a size- and age-rotated file using
// the same rotation scheme as the teacher's CLI logging, instead of the
// default no-op handler.
func WithLogFile(path string, maxSizeMB, maxBackups int) Option {
	return func(c *locationsConfig) {
		c.logFile = path
		c.logFileMaxSizeM = maxSizeMB
		c.logFileBackups = maxBackups
	}
}

// WithLogLevel sets the minimum level diagnostics are emitted at when
// WithLogFile is given. It is ignored otherwise: a logger passed via
// WithLogger keeps its own level.
func WithLogLevel(level slog.Level) Option {
	return func(c *locationsConfig) { c.logLevel = level }
}

// WithMetrics enables collection of lookup counters and segment sizes,
// retrievable afterward via (*Locations).Collector.
func WithMetrics() Option {
	return func(c *locationsConfig) { c.metricsEnabled = true }
}
