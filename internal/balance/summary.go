package balance

import (
	"time"

	"github.com/YannaMedova/controle-ponto/internal/config"
	"github.com/YannaMedova/controle-ponto/internal/holiday"
	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

// Summary aggregates a month against the rest of the counted history.
type Summary struct {
	Month string // "YYYY-MM"

	Worked   time.Duration // total worked in the month
	Expected time.Duration // workday count x daily target
	Balance  time.Duration // month balance, adjustments included
	Carried  time.Duration // balance accumulated before the month
	Total    time.Duration // Carried + Balance
}

// holidaysFor returns the holiday set for the date's year, or an empty
// set when the date is malformed (DayBalance rejects it anyway).
func holidaysFor(date string) holiday.Set {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return holiday.Set{}
	}
	return holiday.ForYear(day.Year())
}

// counted reports whether a date participates in the running total,
// honoring the configured counting start. Earlier entries stay in
// history but are excluded from totals.
func counted(date string, cfg config.Config) bool {
	return cfg.CountingStart == nil || date >= *cfg.CountingStart
}

// MonthSummary computes the month's totals plus the carried-over balance
// of all counted days before it.
func MonthSummary(store *ledger.Store, cfg config.Config, month string, now time.Time) Summary {
	if month == "" {
		month = now.Format("2006-01")
	}

	sum := Summary{Month: month}

	for _, date := range store.Dates() {
		if !counted(date, cfg) {
			continue
		}
		rec, _ := store.Record(date)
		res := DayBalance(date, rec, cfg, holidaysFor(date))

		switch {
		case len(date) >= 7 && date[:7] == month:
			sum.Worked += res.Worked
			sum.Balance += res.Balance
		case date < month+"-01":
			sum.Carried += res.Balance
		}
	}

	if first, err := time.Parse("2006-01", month); err == nil {
		workdays := MonthlyWorkdays(first.Year(), first.Month())
		sum.Expected = time.Duration(float64(workdays) * cfg.DailyTargetHours * float64(time.Hour))
	}

	sum.Total = sum.Carried + sum.Balance
	return sum
}
