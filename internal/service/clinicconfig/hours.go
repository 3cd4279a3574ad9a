package clinicconfig

import "time"

// DayWindow is the opening window for one weekday, in "15:04" clock
// strings local to the clinic.
type DayWindow struct {
	IsOpen     bool
	Opening    string
	Closing    string
	LunchBreak bool
	LunchStart string
	LunchEnd   string
}

// OpenAt reports whether the clinic is open at the given moment for a day
// described by w. Lunch breaks count as closed.
func OpenAt(w DayWindow, t time.Time) bool {
	if !w.IsOpen {
		return false
	}
	open, err := clockMinutes(w.Opening)
	if err != nil {
		return false
	}
	close, err := clockMinutes(w.Closing)
	if err != nil {
		return false
	}

	m := t.Hour()*60 + t.Minute()
	if m < open || m >= close {
		return false
	}

	if w.LunchBreak {
		ls, err1 := clockMinutes(w.LunchStart)
		le, err2 := clockMinutes(w.LunchEnd)
		if err1 == nil && err2 == nil && m >= ls && m < le {
			return false
		}
	}
	return true
}

func clockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
