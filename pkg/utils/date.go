package utils

import "time"

// ParseDate parses a YYYY-MM-DD string. An empty string yields nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// TruncateToDay normalizes a timestamp to midnight, keeping its location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the current day at midnight.
func Today() time.Time {
	return TruncateToDay(time.Now())
}
