package pad

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by padding functions.
var (
	ErrEmptyInput     = errors.New("pad: cannot extend an empty signal")
	ErrNegativeWidth  = errors.New("pad: width must be >= 0")
	ErrUnknownMode    = errors.New("pad: unknown mode")
	ErrLengthMismatch = errors.New("pad: buffer length mismatch")
)

// Mode selects how samples beyond the signal boundaries are synthesized.
type Mode int

const (
	// Edge repeats the boundary sample.
	Edge Mode = iota

	// Constant fills with a fixed value, zero unless WithConstant is given.
	Constant

	// Reflect mirrors the signal about the boundary sample without repeating it.
	Reflect

	// Symmetric mirrors the signal about the boundary, repeating the edge sample.
	Symmetric

	// Wrap extends the signal periodically.
	Wrap
)

var modeNames = map[Mode]string{
	Edge:      "edge",
	Constant:  "constant",
	Reflect:   "reflect",
	Symmetric: "symmetric",
	Wrap:      "wrap",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name such as "edge" or "reflect" to a Mode.
// Matching is case-insensitive; "zero" is accepted as an alias for Constant.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "zero" {
		return Constant, nil
	}

	for m, n := range modeNames {
		if n == key {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Option configures padding.
type Option func(*config)

type config struct {
	constant float64
}

// WithConstant sets the fill value for Constant mode. Other modes ignore it.
func WithConstant(v float64) Option {
	return func(c *config) {
		c.constant = v
	}
}

// Pad returns a new slice of length len(data)+2*width holding data extended
// on both sides according to mode. data is not modified.
func Pad(data []float64, width int, mode Mode, opts ...Option) ([]float64, error) {
	if err := validate(len(data), width, mode); err != nil {
		return nil, err
	}

	out := make([]float64, len(data)+2*width)
	fill(out, data, width, mode, applyOptions(opts))

	return out, nil
}

// PadTo writes the padded signal into dst, which must have length
// len(data)+2*width.
func PadTo(dst, data []float64, width int, mode Mode, opts ...Option) error {
	if err := validate(len(data), width, mode); err != nil {
		return err
	}

	if want := len(data) + 2*width; len(dst) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(dst))
	}

	fill(dst, data, width, mode, applyOptions(opts))

	return nil
}

func applyOptions(opts []Option) config {
	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func validate(n, width int, mode Mode) error {
	if _, ok := modeNames[mode]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	if width < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeWidth, width)
	}

	if n == 0 && width > 0 && mode != Constant {
		return fmt.Errorf("%w (mode %v)", ErrEmptyInput, mode)
	}

	return nil
}

func fill(dst, data []float64, width int, mode Mode, cfg config) {
	n := len(data)
	copy(dst[width:width+n], data)

	for k := 0; k < width; k++ {
		dst[k] = sample(data, k-width, mode, cfg)
		dst[width+n+k] = sample(data, n+k, mode, cfg)
	}
}

// sample returns the synthesized value at source index i, where i lies
// outside [0, len(data)).
func sample(data []float64, i int, mode Mode, cfg config) float64 {
	n := len(data)

	switch mode {
	case Constant:
		return cfg.constant
	case Edge:
		if i < 0 {
			return data[0]
		}

		return data[n-1]
	case Reflect:
		if n == 1 {
			return data[0]
		}

		period := 2 * (n - 1)

		j := mod(i, period)
		if j >= n {
			j = period - j
		}

		return data[j]
	case Symmetric:
		period := 2 * n

		j := mod(i, period)
		if j >= n {
			j = period - 1 - j
		}

		return data[j]
	case Wrap:
		return data[mod(i, n)]
	default:
		return 0
	}
}

func mod(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}

	return r
}
