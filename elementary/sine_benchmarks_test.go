package elementary

import (
	"fmt"
	"testing"

	"github.com/inter-go/inter/interval"
)

func BenchmarkSin(b *testing.B) {

	iterations := []int{1000, 10001}

	if !testing.Short() {
		iterations = append(iterations, DefaultSineIterations)
	}

	x := interval.MustWithEpsilon(0.785, 0.02)

	for _, n := range iterations {

		eval := newSineEvaluator(b, n)

		b.Run(fmt.Sprintf("Iterations=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := eval.Sin(x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
