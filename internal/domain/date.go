package domain

import "time"

// DateLayout is the storage format for calendar dates.
const DateLayout = "2006-01-02"

// DayOf normalizes t to midnight in the given location. All scheduling and
// streak arithmetic works on these day values so that two calls on the same
// calendar day always agree regardless of time-of-day.
func DayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ISOWeekday returns the ISO-8601 weekday (1=Mon..7=Sun) for t.
func ISOWeekday(t time.Time) Weekday {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return Weekday(wd)
}

// ISOWeekBounds returns the Monday and Sunday (midnight-normalized) of the
// ISO week containing t.
func ISOWeekBounds(t time.Time, loc *time.Location) (monday, sunday time.Time) {
	day := DayOf(t, loc)
	monday = day.AddDate(0, 0, -int(ISOWeekday(day)-Monday))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}
