package utils

import "time"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween counts calendar days from start to end inclusive.
// Returns 0 when end is before start.
func DaysBetween(start, end time.Time) int {
	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// ParseClock reads an "HH:MM" wall-clock string, falling back to the
// provided default when the input is empty or malformed.
func ParseClock(s, fallback string) time.Time {
	if t, err := time.Parse(ClockLayout, s); err == nil {
		return t
	}
	t, _ := time.Parse(ClockLayout, fallback)
	return t
}

func FormatClock(t time.Time) string {
	return t.Format("03:04 PM")
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
