package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedWeek records a plain 8h workday, an overtime day and a Saturday.
func seedWeek(t *testing.T, dir string) {
	t.Helper()
	cmd, _ := newTestCmd()
	for _, p := range []struct{ date, time string }{
		{"2025-03-03", "08:00"}, {"2025-03-03", "12:00"},
		{"2025-03-03", "13:00"}, {"2025-03-03", "17:00"},
		{"2025-03-04", "08:00"}, {"2025-03-04", "18:00"},
		{"2025-03-08", "09:00"}, {"2025-03-08", "11:00"},
	} {
		require.NoError(t, runPunch(cmd, dir, p.time, p.date, nowFn()))
	}
}

func TestReportListsDays(t *testing.T) {
	dir := t.TempDir()
	seedWeek(t, dir)
	cmd, buf := newTestCmd()

	require.NoError(t, runReport(cmd, dir, ""))

	out := buf.String()
	assert.Contains(t, out, "2025-03-03")
	assert.Contains(t, out, "Seg")
	assert.Contains(t, out, "08:00 | 12:00 | 13:00 | 17:00")
	// Saturday at double factor: 2h worked, +04:00 balance.
	assert.Contains(t, out, "FIM DE SEMANA")
	assert.Contains(t, out, "04:00")
}

func TestReportMonthFilter(t *testing.T) {
	dir := t.TempDir()
	seedWeek(t, dir)
	cmd, _ := newTestCmd()
	require.NoError(t, runPunch(cmd, dir, "08:00", "2025-04-01", nowFn()))

	cmd, buf := newTestCmd()
	require.NoError(t, runReport(cmd, dir, "2025-03"))

	assert.Contains(t, buf.String(), "2025-03-03")
	assert.NotContains(t, buf.String(), "2025-04-01")
}

func TestReportOpenSessionMarker(t *testing.T) {
	dir := t.TempDir()
	cmd, _ := newTestCmd()
	require.NoError(t, runPunch(cmd, dir, "08:00", "2025-03-03", nowFn()))

	cmd, buf := newTestCmd()
	require.NoError(t, runReport(cmd, dir, ""))
	assert.Contains(t, buf.String(), "08:00 …")
}

func TestReportEmptyLedger(t *testing.T) {
	dir := t.TempDir()
	cmd, buf := newTestCmd()

	require.NoError(t, runReport(cmd, dir, ""))
	assert.Contains(t, buf.String(), "no records")
}

func TestSummaryTotals(t *testing.T) {
	dir := t.TempDir()
	seedWeek(t, dir)
	cmd, buf := newTestCmd()

	require.NoError(t, runSummary(cmd, dir, "2025-03", nowFn()))

	out := buf.String()
	assert.Contains(t, out, "2025-03")
	// 8h + 10h + 2h worked.
	assert.Contains(t, out, "worked:    20:00")
	// 20 workdays x 8h.
	assert.Contains(t, out, "expected:  160:00")
	// Overtime 2h at 1.0 plus Saturday 2h at 2.0.
	assert.Contains(t, out, "month:     06:00")
}

func TestSummaryDefaultsToCurrentMonth(t *testing.T) {
	dir := t.TempDir()
	cmd, buf := newTestCmd()

	require.NoError(t, runSummary(cmd, dir, "", nowFn()))
	assert.Contains(t, buf.String(), "2025-03")
}
