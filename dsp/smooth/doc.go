// Package smooth applies Gaussian smoothing to one-dimensional signals.
//
// [Gaussian] builds a normalized Gaussian kernel, pads the signal by half the
// kernel length on each side and keeps the valid part of the convolution, so
// the output always has the same length as the input:
//
//	y, err := smooth.Gaussian(x,
//		smooth.WithSigma(1.5),
//		smooth.WithKernelSize(11),
//		smooth.WithPadMode(pad.Reflect),
//	)
//
// Defaults are sigma 2.0, kernel size 21 and edge padding. Parameter errors
// from the kernel builder are returned unchanged and match
// [ErrInvalidParameter]. The input slice is never modified.
package smooth
