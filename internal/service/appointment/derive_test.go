package appointment

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestIDPrefix(t *testing.T) {
	if got := IDPrefix(date(2026, time.August, 24, 9, 0)); got != "APT202608" {
		t.Errorf("IDPrefix = %q, want APT202608", got)
	}
	if got := IDPrefix(date(2026, time.January, 2, 9, 0)); got != "APT202601" {
		t.Errorf("IDPrefix = %q, want APT202601", got)
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
			name:   "first appointment of the month",
			prefix: "APT202608",
			lastID: "",
			want:   "APT2026080001",
		},
		{
			name:   "increments existing sequence",
			prefix: "APT202608",
			lastID: "APT2026080011",
			want:   "APT2026080012",
		},
		{
			name:   "sequence grows past four digits",
			prefix: "APT202608",
			lastID: "APT2026089999",
			want:   "APT20260810000",
		},
		{
			name:   "five digit sequence keeps counting",
			prefix: "APT202608",
			lastID: "APT20260810000",
			want:   "APT20260810001",
		},
		{
			name:    "prefix from another month",
			prefix:  "APT202608",
			lastID:  "APT2026070011",
			wantErr: ErrInvalidAppointmentID,
		},
		{
			name:    "corrupt sequence",
			prefix:  "APT202608",
			lastID:  "APT202608abcd",
			wantErr: ErrInvalidAppointmentID,
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

func TestDeriveEndTime(t *testing.T) {
	start := date(2026, time.August, 24, 14, 30)
	if got := DeriveEndTime(start, 45); !got.Equal(date(2026, time.August, 24, 15, 15)) {
		t.Errorf("DeriveEndTime = %v, want 15:15", got)
	}
}

func TestIsPastDue(t *testing.T) {
	start := date(2026, time.August, 24, 14, 0)
	if IsPastDue(start, start.Add(-time.Minute)) {
		t.Error("should not be past due before start")
	}
	if !IsPastDue(start, start.Add(time.Minute)) {
		t.Error("should be past due after start")
	}
	if IsPastDue(start, start) {
		t.Error("exactly at start is not past due")
	}
}

func TestCanBeCancelled(t *testing.T) {
	start := date(2026, time.August, 24, 14, 0)
	window := 24 * time.Hour

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"well before window", start.Add(-48 * time.Hour), true},
		{"one minute before cutoff", start.Add(-window - time.Minute), true},
		{"exactly at cutoff", start.Add(-window), false},
		{"inside window", start.Add(-time.Hour), false},
		{"after start", start.Add(time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanBeCancelled(start, tt.now, window); got != tt.want {
				t.Errorf("CanBeCancelled = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekdayIndex(t *testing.T) {
	// 2026-08-24 is a Monday.
	monday := date(2026, time.August, 24, 0, 0)
	if got := WeekdayIndex(monday); got != 0 {
		t.Errorf("WeekdayIndex(Monday) = %d, want 0", got)
	}
	sunday := date(2026, time.August, 30, 0, 0)
	if got := WeekdayIndex(sunday); got != 6 {
		t.Errorf("WeekdayIndex(Sunday) = %d, want 6", got)
	}
}

func TestWithinWindow(t *testing.T) {
	day := date(2026, time.August, 24, 0, 0)
	at := func(hh, mm int) time.Time { return day.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute) }

	tests := []struct {
		name       string
		start, end time.Time
		from, to   string
		want       bool
	}{
		{"inside", at(10, 0), at(10, 45), "09:00", "17:00", true},
		{"exact bounds", at(9, 0), at(17, 0), "09:00", "17:00", true},
		{"starts too early", at(8, 30), at(9, 30), "09:00", "17:00", false},
		{"ends too late", at(16, 30), at(17, 30), "09:00", "17:00", false},
		{"bad window strings", at(10, 0), at(11, 0), "nine", "17:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinWindow(tt.start, tt.end, tt.from, tt.to); got != tt.want {
				t.Errorf("WithinWindow = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHolidayBlocks(t *testing.T) {
	day := date(2026, time.December, 25, 10, 0)

	if !HolidayBlocks(date(2026, time.December, 25, 0, 0), day, false) {
		t.Error("exact date holiday should block")
	}
	if HolidayBlocks(date(2025, time.December, 25, 0, 0), day, false) {
		t.Error("non-recurring holiday from another year should not block")
	}
	if !HolidayBlocks(date(2020, time.December, 25, 0, 0), day, true) {
		t.Error("recurring holiday should block by month and day")
	}
	if HolidayBlocks(date(2020, time.December, 26, 0, 0), day, true) {
		t.Error("recurring holiday on another day should not block")
	}
}
