package ledger

// DayRecord holds everything recorded for one calendar day. The JSON keys
// are the historical dados_ponto.json schema and must not change.
type DayRecord struct {
	// Punches are "HH:MM" clock strings, kept sorted ascending, no
	// duplicates. Odd-positioned punches are entries, even ones exits.
	Punches []string `json:"batidas"`

	// Adjustment is a signed manual correction in minutes.
	Adjustment int `json:"ajuste_manual"`

	// Off marks a day off: no target, no balance, punches ignored.
	Off bool `json:"folga"`

	// Vacation refines Off; it is never set on a working day.
	Vacation bool `json:"is_ferias,omitempty"`
}

// clone returns a deep copy so callers never hold a live punch slice.
func (r DayRecord) clone() DayRecord {
	out := r
	out.Punches = append([]string(nil), r.Punches...)
	return out
}

// hasPunch reports whether the time is already recorded.
func (r DayRecord) hasPunch(time string) bool {
	for _, p := range r.Punches {
		if p == time {
			return true
		}
	}
	return false
}
