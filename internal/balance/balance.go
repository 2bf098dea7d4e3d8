// Package balance computes worked time and signed balances from ledger
// records. The engine is total: malformed stored data degrades to a zero
// contribution and a logged warning, never an error. Historical files may
// carry corrupt entries and a single bad day must not take the app down.
package balance

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/YannaMedova/controle-ponto/internal/clock"
	"github.com/YannaMedova/controle-ponto/internal/config"
	"github.com/YannaMedova/controle-ponto/internal/holiday"
	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Worked sums the durations of positional punch pairs: (0,1), (2,3), …
// interpreted as (entry, exit). An unpaired trailing punch is an open
// session and contributes nothing. A pair that fails to parse or runs
// backwards is skipped without aborting the rest.
func Worked(punches []string) time.Duration {
	var total time.Duration
	for i := 0; i+1 < len(punches); i += 2 {
		entry, err := clock.Parse(punches[i])
		if err != nil {
			log.WithField("punch", punches[i]).Warn("skipping unparseable punch pair")
			continue
		}
		exit, err := clock.Parse(punches[i+1])
		if err != nil {
			log.WithField("punch", punches[i+1]).Warn("skipping unparseable punch pair")
			continue
		}
		if exit < entry {
			continue
		}
		total += time.Duration(exit-entry) * time.Minute
	}
	return total
}

// Result is the computed balance for a single day.
type Result struct {
	Worked  time.Duration
	Target  time.Duration
	Balance time.Duration

	// Holiday is a display classification only; the arithmetic above
	// already accounts for it.
	Holiday bool
}

// DayBalance computes a day's worked time, target and signed balance.
//
// A day off carries no worked time, target or balance regardless of any
// recorded punches. On weekends and holidays the target is zero and all
// worked time is scaled by the weekend factor. On weekdays the overtime
// portion (and only that portion) is scaled by the weekday factor; a
// deficit is never multiplied. The manual adjustment is added last.
func DayBalance(date string, rec ledger.DayRecord, cfg config.Config, holidays holiday.Set) Result {
	if rec.Off {
		return Result{}
	}

	worked := Worked(rec.Punches)

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		log.WithField("date", date).Warn("ignoring record with invalid date")
		return Result{}
	}

	weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
	isHoliday := holidays.Contains(date)

	var target, balance time.Duration
	if weekend || isHoliday {
		balance = scale(worked, cfg.WeekendFactor)
	} else {
		target = time.Duration(cfg.DailyTargetHours * float64(time.Hour))
		raw := worked - target
		if raw > 0 {
			balance = scale(raw, cfg.WeekdayFactor)
		} else {
			balance = raw
		}
	}

	balance += time.Duration(rec.Adjustment) * time.Minute

	return Result{
		Worked:  worked,
		Target:  target,
		Balance: balance,
		Holiday: isHoliday,
	}
}

func scale(d time.Duration, factor float64) time.Duration {
	return time.Duration(float64(d) * factor)
}

// MonthlyWorkdays counts the Monday-to-Friday days of a month that are
// not holidays, used to project expected hours for a period.
func MonthlyWorkdays(year int, month time.Month) int {
	holidays := holiday.ForYear(year)

	count := 0
	for day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); day.Month() == month; day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		if holidays.Contains(day.Format("2006-01-02")) {
			continue
		}
		count++
	}
	return count
}
