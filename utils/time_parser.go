package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration extends time.ParseDuration to support days (d) and weeks (w).
// The duration must be positive.
func ParseDuration(s string) (time.Duration, error) {
	var d time.Duration
	var err error

	switch {
	case strings.HasSuffix(s, "d"):
		days, convErr := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if convErr != nil {
			return 0, fmt.Errorf("invalid day value: %s", strings.TrimSuffix(s, "d"))
		}
		d = time.Duration(days) * 24 * time.Hour
	case strings.HasSuffix(s, "w"):
		weeks, convErr := strconv.Atoi(strings.TrimSuffix(s, "w"))
		if convErr != nil {
			return 0, fmt.Errorf("invalid week value: %s", strings.TrimSuffix(s, "w"))
		}
		d = time.Duration(weeks) * 7 * 24 * time.Hour
	default:
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, err
		}
	}

	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive: %s", s)
	}
	return d, nil
}

// RelativeTimestamp renders an instant as a Discord relative timestamp,
// e.g. "in 3 hours".
func RelativeTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}
