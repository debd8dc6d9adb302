package domain

import "time"

// WeekStartOf returns the Monday 00:00:00 of the ISO week containing t,
// in t's location. The result identifies the aggregation week.
func WeekStartOf(t time.Time) time.Time {
	// time.Weekday puts Sunday at 0; shift so Monday is 0.
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayBounds returns the inclusive start and exclusive end of the calendar
// day containing t, in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
