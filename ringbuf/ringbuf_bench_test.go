package ringbuf

import (
	"fmt"
	"testing"
)

func BenchmarkPushBackOverwrite(b *testing.B) {
	for _, capacity := range []int{4, 64, 1024} {
		r, _ := New[float64](capacity)

		b.Run(fmt.Sprintf("cap=%d", capacity), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r.PushBack(float64(i))
			}
		})
	}
}

func BenchmarkPushPopCycle(b *testing.B) {
	for _, capacity := range []int{4, 64, 1024} {
		r, _ := New[float64](capacity)

		b.Run(fmt.Sprintf("cap=%d", capacity), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r.PushBack(float64(i))
				if r.Full() {
					r.PopFront()
				}
			}
		})
	}
}

func BenchmarkValues(b *testing.B) {
	for _, capacity := range []int{64, 1024} {
		r, _ := New[float64](capacity)
		for i := 0; i < capacity; i++ {
			r.PushBack(float64(i))
		}

		b.Run(fmt.Sprintf("cap=%d", capacity), func(b *testing.B) {
			b.ReportAllocs()
			var sum float64
			for i := 0; i < b.N; i++ {
				for v := range r.Values() {
					sum += v
				}
			}
			_ = sum
		})
	}
}
