package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/YannaMedova/controle-ponto/internal/config"
	"github.com/YannaMedova/controle-ponto/internal/holiday"
	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

func TestWorkedPairsPositionally(t *testing.T) {
	got := Worked([]string{"08:00", "12:00", "13:00", "17:00"})
	assert.Equal(t, 8*time.Hour, got)
}

func TestWorkedUnpairedTrailingPunch(t *testing.T) {
	assert.Equal(t, time.Duration(0), Worked([]string{"08:00"}))
	// The open session is ignored, the closed pair still counts.
	assert.Equal(t, 4*time.Hour, Worked([]string{"08:00", "12:00", "13:00"}))
}

func TestWorkedSkipsBadPairs(t *testing.T) {
	// Backwards pair contributes zero.
	assert.Equal(t, time.Duration(0), Worked([]string{"12:00", "08:00"}))
	// A malformed punch skips only its pair.
	assert.Equal(t, 4*time.Hour, Worked([]string{"xx:yy", "10:00", "13:00", "17:00"}))
	assert.Equal(t, time.Duration(0), Worked(nil))
}

func testConfig() config.Config {
	cfg := config.Default() // target 8h, weekday 1.0, weekend 2.0
	return cfg
}

// 2025-03-05 is a Wednesday, no holiday.
const wednesday = "2025-03-05"

func holidaysOf(date string) holiday.Set {
	day, _ := time.Parse("2006-01-02", date)
	return holiday.ForYear(day.Year())
}

func TestDayBalanceExactTarget(t *testing.T) {
	rec := ledger.DayRecord{Punches: []string{"08:00", "12:00", "13:00", "17:00"}}
	res := DayBalance(wednesday, rec, testConfig(), holidaysOf(wednesday))

	assert.Equal(t, 8*time.Hour, res.Worked)
	assert.Equal(t, 8*time.Hour, res.Target)
	assert.Equal(t, time.Duration(0), res.Balance)
	assert.False(t, res.Holiday)
}

func TestDayBalanceOvertimeMultiplier(t *testing.T) {
	cfg := testConfig()
	cfg.WeekdayFactor = 1.5

	rec := ledger.DayRecord{Punches: []string{"08:00", "12:00", "13:00", "18:00"}} // 9h
	res := DayBalance(wednesday, rec, cfg, holidaysOf(wednesday))

	// Only the 1h overtime portion is multiplied: 1h x 1.5 = 01:30.
	assert.Equal(t, 90*time.Minute, res.Balance)
}

func TestDayBalanceDeficitNotMultiplied(t *testing.T) {
	cfg := testConfig()
	cfg.WeekdayFactor = 1.5

	rec := ledger.DayRecord{Punches: []string{"08:00", "14:00"}} // 6h, 2h short
	res := DayBalance(wednesday, rec, cfg, holidaysOf(wednesday))

	assert.Equal(t, -2*time.Hour, res.Balance)
}

func TestDayBalanceWeekend(t *testing.T) {
	// 2025-03-08 is a Saturday.
	rec := ledger.DayRecord{Punches: []string{"09:00", "13:00"}} // 4h
	res := DayBalance("2025-03-08", rec, testConfig(), holidaysOf("2025-03-08"))

	assert.Equal(t, time.Duration(0), res.Target)
	assert.Equal(t, 8*time.Hour, res.Balance) // 4h x 2.0
	assert.False(t, res.Holiday)
}

func TestDayBalanceHoliday(t *testing.T) {
	// Christmas 2025 falls on a Thursday.
	rec := ledger.DayRecord{Punches: []string{"09:00", "12:00"}}
	res := DayBalance("2025-12-25", rec, testConfig(), holidaysOf("2025-12-25"))

	assert.True(t, res.Holiday)
	assert.Equal(t, time.Duration(0), res.Target)
	assert.Equal(t, 6*time.Hour, res.Balance)
}

func TestDayBalanceDayOffIgnoresPunches(t *testing.T) {
	rec := ledger.DayRecord{
		Punches:    []string{"08:00", "17:00"},
		Adjustment: 120,
		Off:        true,
	}
	res := DayBalance(wednesday, rec, testConfig(), holidaysOf(wednesday))
	assert.Equal(t, Result{}, res)
}

func TestDayBalanceTotalOnMalformedDate(t *testing.T) {
	rec := ledger.DayRecord{Punches: []string{"08:00", "17:00"}}
	for _, date := range []string{"null", "", "2025-13-40", "garbage"} {
		res := DayBalance(date, rec, testConfig(), holiday.Set{})
		assert.Equal(t, Result{}, res, date)
	}
}

func TestDayBalanceManualAdjustment(t *testing.T) {
	rec := ledger.DayRecord{
		Punches:    []string{"08:00", "16:00"}, // 8h, on target
		Adjustment: -30,
	}
	res := DayBalance(wednesday, rec, testConfig(), holidaysOf(wednesday))
	assert.Equal(t, -30*time.Minute, res.Balance)
}

func TestMonthlyWorkdays(t *testing.T) {
	// March 2025: 21 weekdays, carnival (Mar 3-4 are Monday/Tuesday but
	// only Mar 4 is a holiday) removes one.
	assert.Equal(t, 20, MonthlyWorkdays(2025, time.March))

	// December 2025: 23 weekdays minus Christmas (Thursday).
	assert.Equal(t, 22, MonthlyWorkdays(2025, time.December))
}
