package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minBlockSize is the smallest input segment used by the overlap-add path.
const minBlockSize = 256

// overlapAdd holds the kernel spectrum and scratch buffers for FFT block
// convolution of a long signal with a fixed kernel.
type overlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int

	plan *algofft.Plan[complex128]

	block    []complex128
	spectrum []complex128
}

func newOverlapAdd(kernel []float64) (*overlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	blockSize := nextPowerOf2(len(kernel))
	if blockSize < minBlockSize {
		blockSize = minBlockSize
	}

	// Linear convolution of a block needs blockSize+kernelLen-1 bins.
	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &overlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: len(kernel),
		blockSize: blockSize,
		plan:      plan,
		block:     make([]complex128, fftSize),
		spectrum:  make([]complex128, fftSize),
	}

	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}

	if err := plan.Forward(oa.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// process returns the full linear convolution of input with the kernel.
func (oa *overlapAdd) process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	outputLen := len(input) + oa.kernelLen - 1
	output := make([]float64, outputLen)

	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))
		blockLen := end - start

		for i := range oa.block {
			oa.block[i] = 0
		}
		for i, v := range input[start:end] {
			oa.block[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(oa.block, oa.block); err != nil {
			return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i := range oa.spectrum {
			oa.spectrum[i] = oa.block[i] * oa.kernelFFT[i]
		}

		if err := oa.plan.Inverse(oa.spectrum, oa.spectrum); err != nil {
			return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		// Each block contributes blockLen+kernelLen-1 samples starting at start.
		resultLen := blockLen + oa.kernelLen - 1
		for i := 0; i < resultLen && start+i < outputLen; i++ {
			output[start+i] += real(oa.spectrum[i])
		}
	}

	return output, nil
}

// OverlapAddConvolve performs FFT-based overlap-add convolution of signal
// with kernel and returns the full result of length len(signal)+len(kernel)-1.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := newOverlapAdd(kernel)
	if err != nil {
		return nil, err
	}
	return oa.process(signal)
}
