// Package kernel builds normalized convolution kernels for smoothing.
//
// The Gaussian kernel samples exp(-x²/(2σ²)) at size evenly spaced points
// covering [-size/2, +size/2] and scales the result so it sums to one:
//
//	k, err := kernel.Gaussian(11, 2.0)
//	if err != nil {
//		// errors.Is(err, kernel.ErrInvalidParameter)
//	}
//
// Size must be a positive odd integer so the kernel has a center tap,
// and sigma must be positive. Every call builds a fresh slice.
package kernel
