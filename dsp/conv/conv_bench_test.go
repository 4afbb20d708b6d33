package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func BenchmarkDirect(b *testing.B) {
	for _, kernelLen := range []int{3, 21, 63} {
		b.Run(fmt.Sprintf("kernel=%d", kernelLen), func(b *testing.B) {
			signal := testutil.DeterministicNoise(1, 1, 4096)
			kernel := testutil.DeterministicNoise(2, 1, kernelLen)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Direct(signal, kernel)
			}
		})
	}
}

func BenchmarkValid(b *testing.B) {
	for _, kernelLen := range []int{3, 21, 63} {
		b.Run(fmt.Sprintf("kernel=%d", kernelLen), func(b *testing.B) {
			signal := testutil.DeterministicNoise(1, 1, 4096+kernelLen-1)
			kernel := testutil.DeterministicNoise(2, 1, kernelLen)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Valid(signal, kernel)
			}
		})
	}
}

func BenchmarkOverlapAdd(b *testing.B) {
	for _, kernelLen := range []int{64, 256, 1024} {
		b.Run(fmt.Sprintf("kernel=%d", kernelLen), func(b *testing.B) {
			signal := testutil.DeterministicNoise(1, 1, 4096)
			kernel := testutil.DeterministicNoise(2, 1, kernelLen)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = OverlapAddConvolve(signal, kernel)
			}
		})
	}
}
