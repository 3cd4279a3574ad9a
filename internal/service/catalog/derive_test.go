package catalog

import "testing"

func TestDiscountAmount(t *testing.T) {
	tests := []struct {
		name               string
		original, packaged int64
		want               int64
	}{
		{"normal discount", 100_000, 80_000, 20_000},
		{"no discount", 100_000, 100_000, 0},
		{"package more expensive", 100_000, 120_000, 0},
		{"zero original", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DiscountAmount(tt.original, tt.packaged); got != tt.want {
				t.Errorf("DiscountAmount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name               string
		original, packaged int64
		want               int
	}{
		{"twenty percent", 100_000, 80_000, 20},
		{"rounds down", 300_000, 200_000, 33},
		{"no discount", 100_000, 100_000, 0},
		{"zero original", 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DiscountPercent(tt.original, tt.packaged); got != tt.want {
				t.Errorf("DiscountPercent = %d, want %d", got, tt.want)
			}
		})
	}
}
