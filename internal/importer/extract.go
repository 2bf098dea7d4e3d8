package importer

import (
	"regexp"
	"strconv"
	"strings"
)

// Candidate lines shorter than this carry no date+time pair worth trying.
const minLineLength = 5

// Lines carrying aggregate results must not be misread as data rows.
var aggregateMarkers = []string{"Banco de Horas", "Previstas"}

var (
	// day, month, year separated by optional runs of non-alphanumerics.
	dateRe = regexp.MustCompile(`(\d{2})[\W_]*(\d{2})[\W_]*(\d{4})`)
	timeRe = regexp.MustCompile(`\d{2}:\d{2}`)
)

// Report aggregates the per-line extraction results of one import, the
// visible counterpart of silently skipping malformed lines.
type Report struct {
	Pages         int
	LinesScanned  int
	LinesMatched  int
	LinesSkipped  int
	TablePages    int
	FallbackPages int
}

// observations accumulates extracted times per ISO date. Duplicates across
// lines are allowed here and squashed at merge time.
type observations map[string][]string

// collectLines picks the candidate lines from one page. Table rows win:
// only the first two cells (date-bearing, time-bearing) of each row are
// used, further columns hold derived totals and are untrusted. Pages
// without a usable table fall back to their plain text minus aggregate
// lines.
func collectLines(p Page, rep *Report) []string {
	var lines []string

	for _, row := range p.Rows {
		if len(row) < 2 {
			continue
		}
		line := strings.ReplaceAll(row[0]+" "+row[1], "\n", " ")
		if len(line) > minLineLength {
			lines = append(lines, line)
		}
	}
	if len(lines) > 0 {
		rep.TablePages++
		return lines
	}

	rep.FallbackPages++
	for _, line := range strings.Split(p.Text, "\n") {
		if containsAggregateMarker(line) {
			continue
		}
		if len(line) > minLineLength {
			lines = append(lines, line)
		}
	}
	return lines
}

func containsAggregateMarker(line string) bool {
	for _, m := range aggregateMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// extractLine pulls a date and its times out of one noisy line into acc.
// Returns false when the line yields nothing. Never fails: a malformed
// line must not abort a multi-page import.
func extractLine(line string, acc observations) bool {
	m := dateRe.FindStringSubmatch(line)
	if m == nil {
		return false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	iso := m[3] + "-" + m[2] + "-" + m[1]

	var times []string
	for _, t := range timeRe.FindAllString(line, -1) {
		hh, _ := strconv.Atoi(t[:2])
		mm, _ := strconv.Atoi(t[3:])
		if hh <= 24 && mm < 60 {
			times = append(times, t)
		}
	}
	if len(times) == 0 {
		return false
	}

	acc[iso] = append(acc[iso], times...)
	return true
}

// extractPages walks every page and accumulates date/time observations.
func extractPages(pages []Page, rep *Report) observations {
	acc := observations{}
	rep.Pages = len(pages)

	for _, p := range pages {
		for _, line := range collectLines(p, rep) {
			rep.LinesScanned++
			if extractLine(line, acc) {
				rep.LinesMatched++
			} else {
				rep.LinesSkipped++
				log.WithField("line", truncate(line, 60)).Debug("no date/time pair in line")
			}
		}
	}
	return acc
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
