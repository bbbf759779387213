// SPDX-License-Identifier: MIT

package quantity_test

import (
	"testing"

	"github.com/katalvlaran/physq/quantity"
)

// BenchmarkQuantity_Div measures a division with type resolution.
func BenchmarkQuantity_Div(b *testing.B) {
	sys, err := quantity.NewSystem()
	if err != nil {
		b.Fatalf("NewSystem failed: %v", err)
	}
	d, _ := sys.Distance("10 km")
	t, _ := sys.Time("40 min")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Div(t); err != nil {
			b.Fatalf("Div failed: %v", err)
		}
	}
}

// BenchmarkSystem_Speed measures literal parsing into a typed quantity.
func BenchmarkSystem_Speed(b *testing.B) {
	sys, err := quantity.NewSystem()
	if err != nil {
		b.Fatalf("NewSystem failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sys.Speed("7.5 mi/hr"); err != nil {
			b.Fatalf("Speed failed: %v", err)
		}
	}
}
