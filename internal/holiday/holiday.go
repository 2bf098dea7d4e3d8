// Package holiday computes the Brazilian national holiday set used for
// balance targets. Movable dates are derived from Easter; the set for a
// year is a pure function of the year and is memoized.
package holiday

import (
	"fmt"
	"sync"
	"time"
)

// Set holds the holidays of exactly one calendar year, keyed by ISO date.
type Set map[string]struct{}

// Contains reports whether the ISO date string is a holiday in this set.
func (s Set) Contains(date string) bool {
	_, ok := s[date]
	return ok
}

var (
	cacheMu sync.Mutex
	cache   = map[int]Set{}
)

// Easter computes Easter Sunday for a Gregorian year using the Gauss/Meeus
// civil-calendar algorithm. Integer arithmetic only.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// fixed national and DF dates, as month/day pairs.
var fixed = [][2]int{
	{1, 1}, {4, 21}, {5, 1}, {9, 7}, {10, 12},
	{11, 2}, {11, 15}, {11, 20}, {11, 30}, {12, 25},
}

// ForYear returns the holiday set for a year: the fixed dates plus
// Carnival (Easter-47), Good Friday (Easter-2) and Corpus Christi (Easter+60).
// Easter Sunday itself is only the anchor, not a holiday.
func ForYear(year int) Set {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if s, ok := cache[year]; ok {
		return s
	}

	s := make(Set, len(fixed)+3)
	for _, md := range fixed {
		s[fmt.Sprintf("%04d-%02d-%02d", year, md[0], md[1])] = struct{}{}
	}

	easter := Easter(year)
	for _, offset := range []int{-47, -2, 60} {
		s[easter.AddDate(0, 0, offset).Format("2006-01-02")] = struct{}{}
	}

	cache[year] = s
	return s
}

// IsHoliday reports whether the given date is a holiday.
func IsHoliday(t time.Time) bool {
	return ForYear(t.Year()).Contains(t.Format("2006-01-02"))
}
