package stat

import (
	"fmt"
	"testing"
)

func BenchmarkMeanVarianceUpdate(b *testing.B) {
	b.ReportAllocs()

	var s MeanVariance[float64]
	for i := 0; i < b.N; i++ {
		s.Update(float64(i % 97))
	}
}

func BenchmarkSpectrumFinalize(b *testing.B) {
	for _, size := range []int{64, 1024} {
		s, _ := NewSpectrum(size)
		for i := 0; i < size; i++ {
			s.Sink(float64(i % 7))
		}

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := s.Finalize(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
