package placement_test

import (
	"testing"

	"github.com/katalvlaran/evenlines/placement"
)

// BenchmarkRun measures a complete placement with DefaultConfig: 120×120
// domain, d_sep 0.8, 1500-curve budget. Field sampling is included.
// Complexity: O(MaxCurves×MaxSteps)
func BenchmarkRun(b *testing.B) {
	cfg := placement.DefaultConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := placement.Run(cfg); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}
