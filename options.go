package tmx

import "go.uber.org/zap"

// Options configures a parse.
type Options struct {
	// Logger receives debug output. Nil means the package Logger().
	Logger *zap.Logger
	// LenientDimensions accepts tile grids whose shape differs from the
	// map's declared width and height. The grid is kept as decoded; nothing
	// is padded or truncated.
	LenientDimensions bool
	// Concurrency is the number of tilesets decoded in parallel. Values
	// below 2 decode sequentially. Output and error reporting are the same
	// either way.
	Concurrency int
}

// DefaultOptions returns strict, sequential parsing with the package logger.
func DefaultOptions() Options {
	return Options{Concurrency: 1}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return Logger()
}
