package smooth

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-smooth/dsp/conv"
	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/kernel"
	"github.com/cwbudde/algo-smooth/dsp/pad"
)

// Errors returned by smoothing functions.
var (
	// ErrInvalidParameter is the kernel builder's error, re-exported so
	// callers can match it without importing package kernel.
	ErrInvalidParameter = kernel.ErrInvalidParameter

	ErrUnsupportedShape = errors.New("smooth: input must be one-dimensional")
	ErrLengthMismatch   = errors.New("smooth: buffer length mismatch")
)

// Gaussian returns data smoothed with a normalized Gaussian kernel.
// The result has the same length as data.
func Gaussian(data []float64, opts ...Option) ([]float64, error) {
	out := make([]float64, len(data))
	if err := gaussianTo(out, data, applyOptions(opts)); err != nil {
		return nil, err
	}

	return out, nil
}

// GaussianTo smooths data into dst, which must have the same length.
// dst and data may be the same slice.
func GaussianTo(dst, data []float64, opts ...Option) error {
	if len(dst) != len(data) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(data), len(dst))
	}

	return gaussianTo(dst, data, applyOptions(opts))
}

// GaussianVector smooths a gonum vector. Any matrix that is not a
// mat.Vector, including single-row or single-column dense matrices, is
// rejected with ErrUnsupportedShape.
func GaussianVector(m mat.Matrix, opts ...Option) (*mat.VecDense, error) {
	v, ok := m.(mat.Vector)
	if !ok {
		if m == nil {
			return nil, fmt.Errorf("%w: nil matrix", ErrUnsupportedShape)
		}

		r, c := m.Dims()

		return nil, fmt.Errorf("%w: got %dx%d matrix", ErrUnsupportedShape, r, c)
	}

	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}

	out, err := Gaussian(data, opts...)
	if err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return &mat.VecDense{}, nil
	}

	return mat.NewVecDense(len(out), out), nil
}

func gaussianTo(dst, data []float64, cfg config) error {
	k, err := kernel.Gaussian(cfg.kernelSize, cfg.sigma)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return nil
	}

	width := cfg.kernelSize / 2

	padded, err := pad.Pad(data, width, cfg.mode, pad.WithConstant(cfg.constant))
	if err != nil {
		return fmt.Errorf("smooth: %w", err)
	}

	cfg.logger.Debug("gaussian smoothing",
		zap.Int("samples", len(data)),
		zap.Float64("sigma", cfg.sigma),
		zap.Int("kernel_size", cfg.kernelSize),
		zap.Stringer("mode", cfg.mode),
		zap.Int("padded_len", len(padded)),
	)

	smoothed, err := conv.ConvolveMode(padded, k, conv.ModeValid)
	if err != nil {
		return fmt.Errorf("smooth: %w", err)
	}

	if n := core.CopyInto(dst, smoothed); n != len(data) {
		return fmt.Errorf("%w: convolution produced %d samples, want %d", ErrLengthMismatch, n, len(data))
	}

	return nil
}
