package factors_test

import (
	"testing"

	"github.com/katalvlaran/ntheory/factors"
)

func BenchmarkPrimeFactors(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = factors.NewPrimeFactors(uint64(963_761_198_400)).Collect()
	}
}

func BenchmarkDivisors_Collect(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = factors.NewDivisors(uint64(720_720)).Collect()
	}
}

func BenchmarkTotients(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = factors.Totients[uint64](10_000)
	}
}
