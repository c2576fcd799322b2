package rank_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lexorank/rank"
)

// deepRank narrows (lo,hi) from below n times and returns the final lower
// bound; tails saturate quickly, so the result is a long rank exercising
// the copy path of the midpoint scan.
func deepRank(n int) string {
	lo, hi := "B", "C"
	for i := 0; i < n; i++ {
		lo, _ = rank.Between(lo, hi)
	}
	return lo
}

// BenchmarkBetween_Shallow measures the single-symbol split between two
// adjacent seed ranks.
func BenchmarkBetween_Shallow(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = rank.Between("B", "C")
	}
}

// BenchmarkBetween_Deep measures a split whose lower bound carries a long
// saturated tail (~200 prior insertions into the same gap).
func BenchmarkBetween_Deep(b *testing.B) {
	lo := deepRank(200)

	b.ReportAllocs()
	b.SetBytes(int64(len(lo)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = rank.Between(lo, "C")
	}
}

// BenchmarkBetween_DepthGrowth tracks the cost curve of splitting a gap
// that already absorbed n insertions against the same bound.
func BenchmarkBetween_DepthGrowth(b *testing.B) {
	for _, n := range []int{10, 50, 200, 1000} {
		lo := deepRank(n)

		b.Run(fmt.Sprintf("insertions=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(lo)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = rank.Between(lo, "C")
			}
		})
	}
}

// BenchmarkBefore measures the predecessor scan on a deep rank.
func BenchmarkBefore(b *testing.B) {
	index := deepRank(200)

	b.ReportAllocs()
	b.SetBytes(int64(len(index)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = rank.Before(index)
	}
}

// BenchmarkAfter measures the successor append on a saturated rank.
func BenchmarkAfter(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = rank.After("CZ")
	}
}

// BenchmarkValidate measures canonical-form checking on a deep rank.
func BenchmarkValidate(b *testing.B) {
	index := deepRank(200)

	b.ReportAllocs()
	b.SetBytes(int64(len(index)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = rank.Validate(index)
	}
}

// BenchmarkCompare measures padded ordinal comparison of two deep ranks.
func BenchmarkCompare(b *testing.B) {
	a := deepRank(200)
	c := deepRank(100)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = rank.Compare(a, c)
	}
}

// BenchmarkSequence measures bulk seeding of 1000 ranks.
func BenchmarkSequence(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = rank.Sequence(1000)
	}
}

// BenchmarkSpread measures a balanced fill of 1000 slots into one gap.
func BenchmarkSpread(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = rank.Spread("B", "C", 1000)
	}
}
