package sequences_test

import (
	"testing"

	"github.com/katalvlaran/ntheory/sequences"
)

func BenchmarkArithmetic_SumNext(b *testing.B) {
	nat := sequences.Naturals[uint64]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nat.SumNext(1000)
	}
}

func BenchmarkSquares_SumNext(b *testing.B) {
	sq := sequences.NaturalSquares[uint64]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sq.SumNext(1000)
	}
}

func BenchmarkFibonacci_Skip(b *testing.B) {
	for i := 0; i < b.N; i++ {
		fib := sequences.NewFibonacci[uint64]()
		fib.Skip(60)
	}
}

func BenchmarkCollatz_27(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = sequences.NewCollatz(uint64(27)).Collect()
	}
}
