// Package clock parses and formats the "HH:MM" clock strings stored in the
// ledger and the signed adjustment values typed by the user.
package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockRe = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// Parse parses a strict 24-hour "HH:MM" string into minutes since midnight.
func Parse(s string) (int, error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	if hour > 23 {
		return 0, fmt.Errorf("hour %d out of range", hour)
	}
	if minute > 59 {
		return 0, fmt.Errorf("minute %d out of range", minute)
	}

	return hour*60 + minute, nil
}

// Valid reports whether s is a well-formed "HH:MM" time.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// ParseAdjustment parses a manual adjustment value into signed minutes.
// Accepts plain minutes ("90", "-15") or a signed clock value ("01:30",
// "-00:15"). Unparseable input yields zero, matching how the ledger has
// always treated malformed adjustments.
func ParseAdjustment(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if !strings.Contains(s, ":") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	}

	sign := 1
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = strings.TrimPrefix(s, "-")
	}

	parts := strings.SplitN(s, ":", 2)
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	return sign * (hours*60 + minutes)
}

// FormatSeconds renders a signed second count as "HH:MM" with a leading
// minus for negative values. Examples: 5400 → "01:30", -900 → "-00:15".
func FormatSeconds(seconds int64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}
