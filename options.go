package palette

import "log/slog"

// BuildOption configures Build.
//
// Example:
//
//	// Default: nearest-stop wrap sampling, package logger
//	built, err := palette.Build(pal)
//
//	// Interpolated gradient ramps with a dedicated logger
//	built, err := palette.Build(pal,
//	    palette.WithSampling(palette.SampleLinear),
//	    palette.WithLogger(logger))
type BuildOption func(*buildOptions)

// buildOptions holds optional configuration for Build.
type buildOptions struct {
	sampling Sampling
	logger   *slog.Logger
}

// defaultBuildOptions returns the default build options.
func defaultBuildOptions() buildOptions {
	return buildOptions{
		sampling: SampleWrap,
		logger:   nil, // Falls back to Logger() at use time
	}
}

// WithSampling sets how gradient stops are resampled into their texture row.
func WithSampling(s Sampling) BuildOption {
	return func(o *buildOptions) {
		o.sampling = s
	}
}

// WithLogger sets the logger used for this build and the paint data derived
// from it, overriding the package logger. Nil restores the package logger.
func WithLogger(l *slog.Logger) BuildOption {
	return func(o *buildOptions) {
		o.logger = l
	}
}
