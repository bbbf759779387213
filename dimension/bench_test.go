// SPDX-License-Identifier: MIT

package dimension_test

import (
	"testing"

	"github.com/katalvlaran/physq/dimension"
)

// BenchmarkDimension_String measures canonical signature rendering.
func BenchmarkDimension_String(b *testing.B) {
	d := dimension.New(1, -2, 4, 0, -1)
	for i := 0; i < b.N; i++ {
		_ = d.String()
	}
}

// BenchmarkParse measures signature parsing.
func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := dimension.Parse("MT^4/L^2Theta"); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}
