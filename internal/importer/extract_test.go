package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLine(t *testing.T) {
	acc := observations{}
	ok := extractLine("Data 05/03/2025 Batidas 08:00 12:00", acc)

	require.True(t, ok)
	assert.Equal(t, []string{"08:00", "12:00"}, acc["2025-03-05"])
}

func TestExtractLineSeparatorVariants(t *testing.T) {
	for _, line := range []string{
		"05/03/2025 08:00",
		"05-03-2025 08:00",
		"05.03.2025 08:00",
		"05_03_2025 08:00",
		"05 03 2025 08:00",
	} {
		acc := observations{}
		require.True(t, extractLine(line, acc), line)
		assert.Contains(t, acc, "2025-03-05", line)
	}
}

func TestExtractLineRejectsBadDates(t *testing.T) {
	for _, line := range []string{
		"05/13/2025 08:00", // month 13
		"00/03/2025 08:00", // day 0
		"32/03/2025 08:00", // day 32
		"05/00/2025 08:00", // month 0
	} {
		acc := observations{}
		assert.False(t, extractLine(line, acc), line)
		assert.Empty(t, acc, line)
	}
}

func TestExtractLineFiltersBadTimes(t *testing.T) {
	acc := observations{}
	ok := extractLine("05/03/2025 99:99 08:00 12:60 24:00", acc)

	require.True(t, ok)
	// 99:99 and 12:60 dropped; the lenient 24:00 survives extraction.
	assert.Equal(t, []string{"08:00", "24:00"}, acc["2025-03-05"])
}

func TestExtractLineDateWithoutTimes(t *testing.T) {
	acc := observations{}
	assert.False(t, extractLine("Relatorio 05/03/2025", acc))
	assert.Empty(t, acc)
}

func TestExtractLineNoDate(t *testing.T) {
	acc := observations{}
	assert.False(t, extractLine("Batidas 08:00 12:00", acc))
}

func TestCollectLinesTableWins(t *testing.T) {
	rep := &Report{}
	page := Page{
		Rows: [][]string{{"05/03/2025", "08:00 12:00"}},
		Text: "06/03/2025 09:00\n",
	}

	lines := collectLines(page, rep)
	assert.Equal(t, []string{"05/03/2025 08:00 12:00"}, lines)
	assert.Equal(t, 1, rep.TablePages)
	assert.Equal(t, 0, rep.FallbackPages)
}

func TestCollectLinesFallsBackWhenTableUnusable(t *testing.T) {
	rep := &Report{}
	page := Page{
		Rows: [][]string{{"lonely"}}, // under two columns
		Text: "06/03/2025 09:00 13:00\nshort\n",
	}

	lines := collectLines(page, rep)
	assert.Equal(t, []string{"06/03/2025 09:00 13:00"}, lines)
	assert.Equal(t, 1, rep.FallbackPages)
}

func TestExtractPagesCountsLines(t *testing.T) {
	rep := &Report{}
	pages := []Page{
		{Text: "05/03/2025 08:00 12:00\nno data in this line\n"},
		{Text: "06/03/2025 09:00 13:00\n"},
	}

	obs := extractPages(pages, rep)

	assert.Len(t, obs, 2)
	assert.Equal(t, 2, rep.Pages)
	assert.Equal(t, 3, rep.LinesScanned)
	assert.Equal(t, 2, rep.LinesMatched)
	assert.Equal(t, 1, rep.LinesSkipped)
}

func TestHashIsStable(t *testing.T) {
	assert.Equal(t, Hash([]byte("abc")), Hash([]byte("abc")))
	assert.NotEqual(t, Hash([]byte("abc")), Hash([]byte("abd")))
	assert.Len(t, Hash(nil), 64)
}
