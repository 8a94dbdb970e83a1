package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type DetoxStatus string

const (
	DetoxUnset   DetoxStatus = ""
	DetoxSuccess DetoxStatus = "success"
	DetoxFail    DetoxStatus = "fail"
)

// ParseDetoxStatus accepts the canonical status strings plus "clear"/"unset"
// as aliases for resetting the day.
func ParseDetoxStatus(s string) (DetoxStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success":
		return DetoxSuccess, nil
	case "fail":
		return DetoxFail, nil
	case "", "clear", "unset":
		return DetoxUnset, nil
	}
	return DetoxUnset, fmt.Errorf("unknown detox status %q (want success, fail or clear)", s)
}

// Weekday is an ISO-8601 weekday number: 1=Monday .. 7=Sunday.
type Weekday int

const (
	Monday    Weekday = 1
	Tuesday   Weekday = 2
	Wednesday Weekday = 3
	Thursday  Weekday = 4
	Friday    Weekday = 5
	Saturday  Weekday = 6
	Sunday    Weekday = 7
)

var weekdayNames = map[string]Weekday{
	"mon": Monday, "monday": Monday,
	"tue": Tuesday, "tuesday": Tuesday,
	"wed": Wednesday, "wednesday": Wednesday,
	"thu": Thursday, "thursday": Thursday,
	"fri": Friday, "friday": Friday,
	"sat": Saturday, "saturday": Saturday,
	"sun": Sunday, "sunday": Sunday,
}

func (w Weekday) String() string {
	names := [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return names[w-1]
}

// ParseWeekday accepts short or full English weekday names, or the ISO
// number 1-7.
func ParseWeekday(s string) (Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if w, ok := weekdayNames[key]; ok {
		return w, nil
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 7 {
		return Weekday(n), nil
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// ParseWeekdaySet parses a comma-separated list of weekdays into a sorted,
// deduplicated set.
func ParseWeekdaySet(csv string) ([]Weekday, error) {
	seen := make(map[Weekday]bool)
	var days []Weekday
	for _, part := range strings.Split(csv, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		w, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		if !seen[w] {
			seen[w] = true
			days = append(days, w)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days, nil
}

// FormatWeekdaySet renders a weekday set as the CSV of ISO numbers used for
// storage, e.g. "1,3,5".
func FormatWeekdaySet(days []Weekday) string {
	sorted := append([]Weekday(nil), days...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, d := range sorted {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}
