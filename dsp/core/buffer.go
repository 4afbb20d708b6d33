package core

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
// Copying stops at the shorter of the two slices.
func CopyInto(dst, src []float64) int {
	return copy(dst, src)
}
