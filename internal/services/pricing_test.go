package services

import (
	"math/rand"
	"testing"
)

func TestReconcileTotal(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		discount float64
		shipping float64
		total    float64
		wantErr  bool
	}{
		{name: "exact match", subtotal: 1000, discount: 0, shipping: 60, total: 1060, wantErr: false},
		{name: "match with discount", subtotal: 1000, discount: 100, shipping: 60, total: 960, wantErr: false},
		{name: "drift within tolerance high", subtotal: 1000, discount: 0, shipping: 60, total: 1061, wantErr: false},
		{name: "drift within tolerance low", subtotal: 1000, discount: 0, shipping: 60, total: 1059, wantErr: false},
		{name: "fractional drift", subtotal: 999.5, discount: 0, shipping: 60, total: 1060, wantErr: false},
		{name: "tampered total", subtotal: 1000, discount: 0, shipping: 60, total: 1200, wantErr: true},
		{name: "just over tolerance", subtotal: 1000, discount: 0, shipping: 60, total: 1061.01, wantErr: true},
		{name: "inflated discount", subtotal: 1000, discount: 500, shipping: 60, total: 1060, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ReconcileTotal(tt.subtotal, tt.discount, tt.shipping, tt.total)
			if tt.wantErr {
				if err != ErrTotalMismatch {
					t.Errorf("ReconcileTotal() error = %v, want ErrTotalMismatch", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ReconcileTotal() unexpected error = %v", err)
			}
		})
	}
}

// Randomized check of the acceptance boundary: any deviation within ±1 is
// accepted, anything beyond is rejected.
func TestReconcileTotal_DeviationProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		subtotal := 1 + rng.Float64()*100000
		discount := rng.Float64() * subtotal
		shipping := rng.Float64() * 500
		expected := subtotal - discount + shipping

		within := (rng.Float64()*2 - 1) * 0.99 // safely inside [-1, 1]
		if err := ReconcileTotal(subtotal, discount, shipping, expected+within); err != nil {
			t.Fatalf("iteration %d: deviation %v rejected: %v", i, within, err)
		}

		beyond := 1.01 + rng.Float64()*1000
		if rng.Intn(2) == 0 {
			beyond = -beyond
		}
		if err := ReconcileTotal(subtotal, discount, shipping, expected+beyond); err != ErrTotalMismatch {
			t.Fatalf("iteration %d: deviation %v accepted, want ErrTotalMismatch", i, beyond)
		}
	}
}
