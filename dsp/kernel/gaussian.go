package kernel

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Metadata describes a built kernel.
type Metadata struct {
	Size            int
	Sum             float64
	Center          float64
	EffectiveLength float64
}

// Gaussian returns a normalized Gaussian kernel of the given odd size.
func Gaussian(size int, sigma float64) ([]float64, error) {
	if err := validateGaussian(size, sigma); err != nil {
		return nil, err
	}

	out := make([]float64, size)
	fillGaussian(out, sigma)

	return out, nil
}

// GaussianTo writes a normalized Gaussian kernel into dst.
// The kernel size is len(dst).
func GaussianTo(dst []float64, sigma float64) error {
	if err := validateGaussian(len(dst), sigma); err != nil {
		return err
	}

	fillGaussian(dst, sigma)

	return nil
}

// Info reports summary properties of kernel coefficients.
// EffectiveLength is 1/Σk², the number of equally weighted taps with the
// same noise reduction; it is zero for an all-zero kernel.
func Info(k []float64) Metadata {
	m := Metadata{Size: len(k)}
	if len(k) == 0 {
		return m
	}

	m.Sum = floats.Sum(k)
	m.Center = k[len(k)/2]

	if energy := floats.Dot(k, k); energy > 0 {
		m.EffectiveLength = 1 / energy
	}

	return m
}

func fillGaussian(dst []float64, sigma float64) {
	size := len(dst)
	if size == 1 {
		dst[0] = 1
		return
	}

	half := float64(size / 2)
	x := floats.Span(make([]float64, size), -half, half)

	// dst holds x² until the density is evaluated in place.
	vecmath.MulBlock(dst, x, x)

	twoSigmaSq := 2 * sigma * sigma
	for i, sq := range dst {
		dst[i] = math.Exp(-sq / twoSigmaSq)
	}

	floats.Scale(1/floats.Sum(dst), dst)
}
