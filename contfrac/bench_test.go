package contfrac_test

import (
	"testing"

	"github.com/katalvlaran/surd/contfrac"
	"github.com/katalvlaran/surd/numeric"
)

// benchmarkExpand measures a full period expansion of √n.
func benchmarkExpand(b *testing.B, n uint64) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := contfrac.Expand(n); err != nil {
			b.Fatalf("Expand failed: %v", err)
		}
	}
}

// BenchmarkExpand_Small expands √61 (period 11).
func BenchmarkExpand_Small(b *testing.B) { benchmarkExpand(b, 61) }

// BenchmarkExpand_Medium expands √1000099 (long period).
func BenchmarkExpand_Medium(b *testing.B) { benchmarkExpand(b, 1000099) }

// BenchmarkFold_Big folds 500 quotients of √2 over big integers.
func BenchmarkFold_Big(b *testing.B) {
	an := make([]uint64, 500)
	for i := range an {
		an[i] = 2
	}
	an[0] = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := contfrac.Fold(numeric.BigInt{}, an); err != nil {
			b.Fatalf("Fold failed: %v", err)
		}
	}
}
