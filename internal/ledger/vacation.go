package ledger

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// SetVacationRange marks every day from start to end (inclusive, ISO
// dates) as day-off vacation. An end before the start is a no-op.
func (s *Store) SetVacationRange(start, end string) error {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", start, err)
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if to.Before(from) {
		return nil
	}

	for _, day := range expandRange(from, to) {
		date := day.Format("2006-01-02")
		r := s.ensure(date)
		r.Off = true
		r.Vacation = true
		s.days[date] = r
	}
	return s.Save()
}

// expandRange evaluates a daily recurrence between from and to, both
// inclusive, yielding one date per day.
func expandRange(from, to time.Time) []time.Time {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: from,
	})
	if err != nil {
		return nil
	}
	return rule.Between(from, to, true)
}
