package smooth

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-smooth/dsp/pad"
)

// Default smoothing parameters.
const (
	DefaultSigma      = 2.0
	DefaultKernelSize = 21
	DefaultPadMode    = pad.Edge
)

// Option configures smoothing.
type Option func(*config)

type config struct {
	sigma      float64
	kernelSize int
	mode       pad.Mode
	constant   float64
	logger     *zap.Logger
}

func defaultConfig() config {
	return config{
		sigma:      DefaultSigma,
		kernelSize: DefaultKernelSize,
		mode:       DefaultPadMode,
		logger:     zap.NewNop(),
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSigma sets the Gaussian spread in samples.
// Values are not clamped; non-positive sigma fails with ErrInvalidParameter.
func WithSigma(sigma float64) Option {
	return func(c *config) {
		c.sigma = sigma
	}
}

// WithKernelSize sets the kernel length, which must be positive and odd.
func WithKernelSize(size int) Option {
	return func(c *config) {
		c.kernelSize = size
	}
}

// WithPadMode selects how the signal is extended at its boundaries.
func WithPadMode(mode pad.Mode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

// WithConstant sets the fill value used with pad.Constant.
func WithConstant(v float64) Option {
	return func(c *config) {
		c.constant = v
	}
}

// WithLogger attaches a logger for debug output. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
