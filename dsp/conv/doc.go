// Package conv provides one-dimensional linear convolution.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain convolution, best for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// # Usage
//
//	result, err := conv.Convolve(signal, kernel)                 // Full result, auto-selects algorithm
//	result, err := conv.ConvolveMode(signal, kernel, conv.ModeValid) // Fully overlapping region only
//	result, err := conv.Valid(signal, kernel)                    // Valid region via sliding dot products
//
// # Algorithm Selection
//
// [Convolve] uses direct convolution for kernels up to 64 samples and
// FFT-based overlap-add above that. [ConvolveMode] with [ModeValid] skips the
// full result entirely for short kernels and evaluates only the overlapping
// outputs with [Valid].
package conv
