// Package timeutil provides utility functions for parsing durations and
// points in time.
package timeutil

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// ParseSeconds parses a duration in whole seconds. A bare number is taken as
// seconds, otherwise the value must be a Go duration string such as "1m30s".
func ParseSeconds(s string) (int, error) {
	s = strings.TrimSpace(s)

	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}

	return Round(dur.Seconds()), nil
}

// FromStr parses a natural-language time such as "in 10 minutes" or "5pm"
// relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

// SecondsUntil returns the whole seconds from now until end, rounded to the
// nearest second.
func SecondsUntil(now, end time.Time) int {
	return Round(end.Sub(now).Seconds())
}
