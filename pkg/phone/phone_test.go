package phone

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "national format with leading zero",
			input: "0712345678",
			want:  "+254712345678",
		},
		{
			name:  "already E.164",
			input: "+254712345678",
			want:  "+254712345678",
		},
		{
			name:  "spaces and dashes stripped",
			input: "0712 345-678",
			want:  "+254712345678",
		},
		{
			name:  "foreign number with country code",
			input: "+14155552671",
			want:  "+14155552671",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrEmpty,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: ErrEmpty,
		},
		{
			name:    "too short",
			input:   "12345",
			wantErr: ErrInvalid,
		},
		{
			name:    "garbage",
			input:   "not-a-phone",
			wantErr: ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Normalize(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeForRegion(t *testing.T) {
	got, err := NormalizeForRegion("07911 123456", "GB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "+447911123456" {
		t.Errorf("got %q, want %q", got, "+447911123456")
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("+254712345678") {
		t.Error("expected valid Kenyan mobile number")
	}
	if IsValid("12345") {
		t.Error("expected short number to be invalid")
	}
}

func TestRegion(t *testing.T) {
	got, err := Region("+254712345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "KE" {
		t.Errorf("Region = %q, want KE", got)
	}
}
