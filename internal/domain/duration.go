package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	hoursPattern   = regexp.MustCompile(`(\d+)\s*h`)
	minutesPattern = regexp.MustCompile(`(\d+)\s*m`)
)

// Largest component values that still fit in a time.Duration.
const (
	maxHours   = int64(math.MaxInt64 / int64(time.Hour))
	maxMinutes = int64(math.MaxInt64 / int64(time.Minute))
)

// ParseDuration extracts hours and minutes from free text such as "1h30m",
// "45 m" or "2H". The first number followed by "h" is the hour component and
// the first number followed by "m" is the minute component. Missing or
// unreadable components count as zero, as does a component too large for a
// time.Duration. If the sum would still overflow the minutes are dropped.
// The function never fails and never returns a negative duration.
func ParseDuration(s string) time.Duration {
	s = strings.ToLower(strings.TrimSpace(s))
	hours := time.Duration(firstNumber(hoursPattern, s, maxHours)) * time.Hour
	minutes := time.Duration(firstNumber(minutesPattern, s, maxMinutes)) * time.Minute
	if hours > math.MaxInt64-minutes {
		return hours
	}
	return hours + minutes
}

// ValidateDuration reports ErrInvalidDuration when s has neither an hour nor
// a minute component. It is only consulted in strict mode.
func ValidateDuration(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if hoursPattern.MatchString(s) || minutesPattern.MatchString(s) {
		return nil
	}
	return ErrInvalidDuration
}

// firstNumber returns the first match of re, or 0 when it is absent or above limit.
func firstNumber(re *regexp.Regexp, s string, limit int64) int64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n > limit {
		return 0
	}
	return n
}

// ClockLayout is the layout used for start/finish labels.
const ClockLayout = "15:04"

// FormatClock formats t as HH:MM.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseClock returns today's date (taken from now) at the given HH:MM in now's location.
func ParseClock(s string, now time.Time) (time.Time, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidClock
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}
