package squeeze

import "go.uber.org/zap"

// Options configures the statistics-driven optimizer (LZ77Optimal).
type Options struct {
	// NumIterations is the number of stat-driven DP+backtrace+replay passes
	// to run. With 0, LZ77Optimal runs no passes and returns the greedy
	// seed parse unchanged.
	NumIterations int

	// Seed1 and Seed2 drive the deterministic PRNG used to perturb SymbolStats
	// frequencies on a stagnation kick. Same seed + same input => bit
	// identical output.
	Seed1, Seed2 uint32

	// UseAccelerator enables the same-byte-run fast path in the forward DP
	// (spec.md §4.3.b). Disabling it is used by tests to check that the
	// accelerator agrees with the unaccelerated DP on true bit cost.
	UseAccelerator bool

	// Logger receives one debug line per iteration of the statistics-driven
	// driver. A nil Logger is replaced with a no-op logger.
	Logger *zap.SugaredLogger
}

// DefaultOptions returns Options with a single iteration, the accelerator
// enabled, a fixed deterministic seed, and a no-op logger.
func DefaultOptions() *Options {
	return &Options{
		NumIterations:  1,
		Seed1:          1,
		Seed2:          2,
		UseAccelerator: true,
		Logger:         zap.NewNop().Sugar(),
	}
}

func (o *Options) logger() *zap.SugaredLogger {
	if o == nil || o.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.Logger
}
