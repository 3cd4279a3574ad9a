package clinicconfig

import (
	"testing"
	"time"
)

func at(hh, mm int) time.Time {
	return time.Date(2026, time.August, 24, hh, mm, 0, 0, time.UTC)
}

func TestOpenAt(t *testing.T) {
	window := DayWindow{
		IsOpen:  true,
		Opening: "09:00",
		Closing: "17:00",
	}

	withLunch := window
	withLunch.LunchBreak = true
	withLunch.LunchStart = "13:00"
	withLunch.LunchEnd = "14:00"

	tests := []struct {
		name string
		w    DayWindow
		t    time.Time
		want bool
	}{
		{"mid-morning", window, at(10, 30), true},
		{"exactly at opening", window, at(9, 0), true},
		{"before opening", window, at(8, 59), false},
		{"exactly at closing", window, at(17, 0), false},
		{"after closing", window, at(18, 0), false},
		{"closed day", DayWindow{IsOpen: false, Opening: "09:00", Closing: "17:00"}, at(10, 0), false},
		{"during lunch", withLunch, at(13, 30), false},
		{"lunch end is open again", withLunch, at(14, 0), true},
		{"just before lunch", withLunch, at(12, 59), true},
		{"unparseable window", DayWindow{IsOpen: true, Opening: "morning", Closing: "17:00"}, at(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OpenAt(tt.w, tt.t); got != tt.want {
				t.Errorf("OpenAt = %v, want %v", got, tt.want)
			}
		})
	}
}
