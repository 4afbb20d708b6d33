package kernel

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when a kernel size or spread is out of range.
var ErrInvalidParameter = errors.New("kernel: invalid parameter")

// validateGaussian checks positivity first, then parity.
func validateGaussian(size int, sigma float64) error {
	if size <= 0 || !(sigma > 0) {
		return fmt.Errorf("%w: size and sigma must be positive (size=%d, sigma=%g)",
			ErrInvalidParameter, size, sigma)
	}
	if size%2 == 0 {
		return fmt.Errorf("%w: size must be odd to center the kernel (size=%d)",
			ErrInvalidParameter, size)
	}
	return nil
}
