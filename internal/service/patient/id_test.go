package patient

import (
	"errors"
	"testing"
	"time"
)

func TestIDPrefix(t *testing.T) {
	now := time.Date(2026, time.August, 24, 10, 0, 0, 0, time.UTC)
	if got := IDPrefix(now); got != "PAT2026" {
		t.Errorf("IDPrefix = %q, want PAT2026", got)
	}
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		lastID  string
		want    string
		wantErr error
	}{
		{
			name:   "first patient of the year",
			prefix: "PAT2026",
			lastID: "",
			want:   "PAT20260001",
		},
		{
			name:   "increments existing sequence",
			prefix: "PAT2026",
			lastID: "PAT20260041",
			want:   "PAT20260042",
		},
		{
			name:   "sequence past 9999 widens instead of wrapping",
			prefix: "PAT2026",
			lastID: "PAT20269999",
			want:   "PAT202610000",
		},
		{
			name:   "five digit sequence keeps counting",
			prefix: "PAT2026",
			lastID: "PAT202610000",
			want:   "PAT202610001",
		},
		{
			name:    "wrong prefix",
			prefix:  "PAT2026",
			lastID:  "PAT20250041",
			wantErr: ErrInvalidPatientID,
		},
		{
			name:    "non-numeric sequence",
			prefix:  "PAT2026",
			lastID:  "PAT2026XXXX",
			wantErr: ErrInvalidPatientID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextID(tt.prefix, tt.lastID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NextID error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NextID unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextID = %q, want %q", got, tt.want)
			}
		})
	}
}
