// Package importer turns semi-structured timesheet documents into ledger
// punches: tolerant date/time extraction per page, duplicate-submission
// detection by content hash, and additive or overwrite merging.
package importer

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/YannaMedova/controle-ponto/internal/config"
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

// Status is the terminal state of an import. Nothing ever raises past
// this boundary.
type Status string

const (
	StatusOK        Status = "ok"
	StatusDuplicate Status = "duplicate"
	StatusError     Status = "error"
)

// Outcome is the final result of one import attempt.
type Outcome struct {
	Status  Status
	Message string

	Added    int    // newly added punches
	LastDate string // latest ISO date merged, "" when none
	Report   Report
}

// Page is one page of extracted document content. Rows carry the cells of
// table-shaped content; Text is the plain-text fallback.
type Page struct {
	Rows [][]string
	Text string
}

// Document is a fully extracted document plus its raw bytes for hashing.
// Extraction happens before any merging, so a failed parse never touches
// persisted state.
type Document struct {
	Raw   []byte
	Pages []Page
}

// Importer merges extracted documents into the ledger and records the
// document hash in the configuration.
type Importer struct {
	Store   *ledger.Store
	Config  *config.Config
	DataDir string
}

// ImportFile reads a document from disk and imports it. A file that
// cannot be opened or parsed yields an error outcome, not an error.
func (imp *Importer) ImportFile(path string, force bool) Outcome {
	doc, err := ReadDocument(path)
	if err != nil {
		return Outcome{
			Status:  StatusError,
			Message: fmt.Sprintf("could not read document: %v", err),
		}
	}
	return imp.Import(doc, force)
}

// Import runs extraction over the whole document, then merges the
// accumulated observations into the ledger in one pass. With force the
// duplicate check is bypassed and affected days are overwritten; without
// it only missing times are appended.
func (imp *Importer) Import(doc Document, force bool) Outcome {
	hash := Hash(doc.Raw)

	if imp.Config.LastImportHash != nil && *imp.Config.LastImportHash == hash && !force {
		return Outcome{
			Status:  StatusDuplicate,
			Message: "document already imported",
		}
	}

	var report Report
	obs := extractPages(doc.Pages, &report)
	if len(obs) == 0 {
		return Outcome{
			Status:  StatusError,
			Message: "no recognizable dates found in the document",
			Report:  report,
		}
	}

	added, lastDate := imp.merge(obs, force)

	imp.Config.LastImportHash = &hash
	if err := config.Save(imp.DataDir, *imp.Config); err != nil {
		return Outcome{Status: StatusError, Message: err.Error(), Report: report}
	}
	if err := imp.Store.Save(); err != nil {
		return Outcome{Status: StatusError, Message: err.Error(), Report: report}
	}

	return Outcome{
		Status:   StatusOK,
		Message:  fmt.Sprintf("imported %d punches (last date %s)", added, lastDate),
		Added:    added,
		LastDate: lastDate,
		Report:   report,
	}
}

// merge applies the accumulated observations to the ledger. Times are
// sorted and deduplicated per date first. Returns the number of punches
// added and the latest merged date.
func (imp *Importer) merge(obs observations, overwrite bool) (int, string) {
	dates := make([]string, 0, len(obs))
	for d := range obs {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	added := 0
	for _, date := range dates {
		times := dedupe(obs[date])
		if overwrite {
			imp.Store.MergeOverwrite(date, times)
			added += len(times)
		} else {
			added += imp.Store.MergeAdditive(date, times)
		}
	}
	return added, dates[len(dates)-1]
}

func dedupe(times []string) []string {
	seen := make(map[string]struct{}, len(times))
	out := make([]string, 0, len(times))
	for _, t := range times {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
