// Package ledger owns the per-date punch records and their persistence.
// The whole file is rewritten after every mutation; the data volume is a
// single user's history, so incremental writes buy nothing.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileName is the ledger file inside the data directory.
const FileName = "dados_ponto.json"

// Store is the owned, mutable ledger state. All mutating methods persist
// the full ledger before returning.
type Store struct {
	path string
	days map[string]DayRecord
}

// Path returns the ledger file location inside the data directory.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Load reads the ledger file from the data directory. A missing or
// unreadable file yields an empty ledger; startup never fails on bad data.
func Load(dataDir string) *Store {
	s := &Store{
		path: Path(dataDir),
		days: map[string]DayRecord{},
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s.days); err != nil {
		s.days = map[string]DayRecord{}
	}
	return s
}

// Save rewrites the whole ledger file, pretty-printed and human-diffable.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}

	data, err := json.MarshalIndent(s.days, "", "  ")
	if err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}

// Record returns a copy of the record for a date, if present.
func (s *Store) Record(date string) (DayRecord, bool) {
	r, ok := s.days[date]
	if !ok {
		return DayRecord{}, false
	}
	return r.clone(), true
}

// Dates returns all recorded dates in ascending order.
func (s *Store) Dates() []string {
	dates := make([]string, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Len returns the number of recorded days.
func (s *Store) Len() int {
	return len(s.days)
}

// ensure returns the record for a date, creating an empty one on first use.
func (s *Store) ensure(date string) DayRecord {
	if r, ok := s.days[date]; ok {
		return r
	}
	return DayRecord{Punches: []string{}}
}

// AddPunch records a punch for a date. Returns false without persisting
// if the time is already present.
func (s *Store) AddPunch(date, time string) (bool, error) {
	r := s.ensure(date)
	if r.hasPunch(time) {
		return false, nil
	}

	r.Punches = append(r.Punches, time)
	sort.Strings(r.Punches)
	s.days[date] = r
	return true, s.Save()
}

// EditPunch replaces an existing punch with a new time. Returns false
// without persisting if the date or the old time is absent. Editing onto
// a time already recorded collapses to that punch; a day never holds
// duplicates.
func (s *Store) EditPunch(date, oldTime, newTime string) (bool, error) {
	r, ok := s.days[date]
	if !ok || !r.hasPunch(oldTime) {
		return false, nil
	}

	punches := make([]string, 0, len(r.Punches))
	for _, p := range r.Punches {
		if p != oldTime {
			punches = append(punches, p)
		}
	}
	r.Punches = punches
	if !r.hasPunch(newTime) {
		r.Punches = append(r.Punches, newTime)
		sort.Strings(r.Punches)
	}
	s.days[date] = r
	return true, s.Save()
}

// RemovePunch deletes a punch from a date. Returns false without
// persisting if the date or the time is absent.
func (s *Store) RemovePunch(date, time string) (bool, error) {
	r, ok := s.days[date]
	if !ok || !r.hasPunch(time) {
		return false, nil
	}

	punches := make([]string, 0, len(r.Punches))
	for _, p := range r.Punches {
		if p != time {
			punches = append(punches, p)
		}
	}
	r.Punches = punches
	s.days[date] = r
	return true, s.Save()
}

// SetAdjustment sets the signed manual adjustment for a date, creating the
// record if absent.
func (s *Store) SetAdjustment(date string, minutes int) error {
	r := s.ensure(date)
	r.Adjustment = minutes
	s.days[date] = r
	return s.Save()
}

// SetDayOff marks or clears a day off. Vacation only sticks together with
// off; clearing off always clears vacation.
func (s *Store) SetDayOff(date string, off, vacation bool) error {
	r := s.ensure(date)
	r.Off = off
	r.Vacation = off && vacation
	s.days[date] = r
	return s.Save()
}

// DeleteDay removes a date's record entirely. Absent dates are a no-op.
func (s *Store) DeleteDay(date string) error {
	if _, ok := s.days[date]; !ok {
		return nil
	}
	delete(s.days, date)
	return s.Save()
}

// MergeOverwrite replaces a date's record wholesale with the given punch
// list: adjustment reset, off cleared. Used by the importer, which saves
// once after the whole document has been merged.
func (s *Store) MergeOverwrite(date string, times []string) {
	s.days[date] = DayRecord{Punches: append([]string(nil), times...)}
}

// MergeAdditive appends the times not already present for a date,
// preserving adjustment and off flags. Used by the importer, which saves
// once after the whole document has been merged. Returns the number of
// newly added punches.
func (s *Store) MergeAdditive(date string, times []string) int {
	r := s.ensure(date)

	added := 0
	for _, t := range times {
		if !r.hasPunch(t) {
			r.Punches = append(r.Punches, t)
			added++
		}
	}
	if added > 0 {
		sort.Strings(r.Punches)
		s.days[date] = r
	} else if _, ok := s.days[date]; !ok {
		s.days[date] = r
	}
	return added
}
