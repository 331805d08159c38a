// Package dates canonicalizes the date strings used as bucket keys across the
// board. Every planned, order and delivery date is kept in one textual form,
// DD.MM.YYYY, so that string equality is a reliable grouping key.
package dates

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
)

// KeyLayout is the canonical date key layout.
const KeyLayout = "02.01.2006"

var (
	reSlash      = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	reDot        = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)
	reISO        = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reShortSlash = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{2})$`)
)

// Canonicalize converts an upstream date string to the canonical DD.MM.YYYY
// key. Accepted inputs: DD/MM/YYYY, DD.MM.YYYY (pass-through), YYYY-MM-DD,
// ISO-8601 datetimes, and two-digit-year DD/MM/YY (expanded to 20YY).
//
// An unrecognized format is returned unchanged and logged: bucketing still
// works as long as the same string recurs for that order, and breaking the
// board over already-inconsistent upstream data is worse than a warning.
func Canonicalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if strings.Contains(s, "T") {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.Format(KeyLayout)
		}
		if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
			return t.Format(KeyLayout)
		}
	}

	switch {
	case reDot.MatchString(s):
		return s
	case reSlash.MatchString(s):
		m := reSlash.FindStringSubmatch(s)
		return fmt.Sprintf("%s.%s.%s", m[1], m[2], m[3])
	case reISO.MatchString(s):
		m := reISO.FindStringSubmatch(s)
		return fmt.Sprintf("%s.%s.%s", m[3], m[2], m[1])
	case reShortSlash.MatchString(s):
		m := reShortSlash.FindStringSubmatch(s)
		return fmt.Sprintf("%s.%s.20%s", m[1], m[2], m[3])
	}

	slog.Warn("unrecognized date format, passing through", "value", s)
	return s
}

// ParseKey parses a canonical DD.MM.YYYY key into a midnight time.Time.
func ParseKey(key string) (time.Time, error) {
	t, err := time.Parse(KeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date key %q: %w", key, err)
	}
	return t, nil
}

// FormatKey formats a time as the canonical DD.MM.YYYY key.
func FormatKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// Midnight truncates a time to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayNames holds the weekday labels shown in day headers, indexed by
// time.Weekday (Sunday first).
var dayNames = [7]string{
	"Воскресенье", "Понедельник", "Вторник", "Среда",
	"Четверг", "Пятница", "Суббота",
}

// DayName returns the weekday label for a day header.
func DayName(t time.Time) string {
	return dayNames[t.Weekday()]
}
