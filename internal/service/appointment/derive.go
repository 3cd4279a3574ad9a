package appointment

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Appointment ids are human-readable, one sequence per calendar month:
// APT<yyyymm><seq:04d>, e.g. APT2026080012. The sequence is computed from
// the maximum existing id under the month prefix and never reused.

// IDPrefix returns the appointment id prefix for the month of start,
// e.g. "APT202608".
func IDPrefix(start time.Time) string {
	return fmt.Sprintf("APT%d%02d", start.Year(), int(start.Month()))
}

// NextID computes the next appointment id under prefix. lastID is the
// current maximum id carrying that prefix, or empty when the month has no
// appointments yet.
func NextID(prefix, lastID string) (string, error) {
	seq := 1
	if lastID != "" {
		rest, ok := strings.CutPrefix(lastID, prefix)
		if !ok {
			return "", fmt.Errorf("%w: %q does not carry prefix %q", ErrInvalidAppointmentID, lastID, prefix)
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidAppointmentID, lastID)
		}
		seq = n + 1
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

// DeriveEndTime computes the end of a visit from its start and duration.
// Only used when the caller does not supply an explicit end time.
func DeriveEndTime(start time.Time, durationMin int) time.Time {
	return start.Add(time.Duration(durationMin) * time.Minute)
}

// IsPastDue reports whether the scheduled start has already passed.
func IsPastDue(start, now time.Time) bool {
	return now.After(start)
}

// CanBeCancelled reports whether a cancellation at `now` is still inside
// the allowed window, i.e. strictly before start − window.
func CanBeCancelled(start, now time.Time, window time.Duration) bool {
	return now.Before(start.Add(-window))
}

// WeekdayIndex maps a time to the schedule convention 0=Monday .. 6=Sunday.
func WeekdayIndex(t time.Time) int8 {
	return int8((int(t.Weekday()) + 6) % 7)
}

// WithinWindow reports whether [start, end] falls inside the working
// window [from, to], where from/to are "15:04" clock strings in the same
// location as start/end.
func WithinWindow(start, end time.Time, from, to string) bool {
	open, err := clockMinutes(from)
	if err != nil {
		return false
	}
	close, err := clockMinutes(to)
	if err != nil {
		return false
	}
	s := start.Hour()*60 + start.Minute()
	e := end.Hour()*60 + end.Minute()
	if e == 0 && end.After(start) {
		e = 24 * 60 // ends exactly at midnight
	}
	return s >= open && e <= close
}

// HolidayBlocks reports whether a holiday dated holidayDate blocks booking
// on day. Recurring holidays match by month and day regardless of year.
func HolidayBlocks(holidayDate, day time.Time, recurring bool) bool {
	if recurring {
		return holidayDate.Month() == day.Month() && holidayDate.Day() == day.Day()
	}
	hy, hm, hd := holidayDate.Date()
	dy, dm, dd := day.Date()
	return hy == dy && hm == dm && hd == dd
}

func clockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
