package interval

import (
	"testing"
)

func BenchmarkEvaluator(b *testing.B) {

	eval := NewEvaluator[float64](nil)
	x, y := MustWithRange(0.1, 0.2), MustWithRange(1.0/3, 0.5)

	b.Run("Add", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := eval.Add(x, y); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Sub", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := eval.Sub(x, y); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := eval.Mul(x, y); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Div", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := eval.Div(x, y); err != nil {
				b.Fatal(err)
			}
		}
	})
}
