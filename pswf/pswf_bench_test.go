package pswf

import "testing"

func BenchmarkCompute(b *testing.B) {
	orders := []int{0, 1, 2, 3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compute(orders, 20); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCoefficients(b *testing.B) {
	orders := []int{0, 1, 2, 3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Coefficients(orders, 20); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOperatorMatrix(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := operatorMatrix(50, 256); err != nil {
			b.Fatal(err)
		}
	}
}
