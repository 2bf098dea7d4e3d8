package balance

import (
	"strings"
	"time"

	"github.com/YannaMedova/controle-ponto/internal/config"
	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

// Day classification strings, mutually exclusive. Vacation takes priority
// over a generic day off, day off over holiday, holiday over weekend.
const (
	NoteVacation = "FÉRIAS"
	NoteDayOff   = "FOLGA"
	NoteHoliday  = "FERIADO"
	NoteWeekend  = "FIM DE SEMANA"
)

// Portuguese weekday abbreviations, indexed by time.Weekday.
var weekdayNames = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// Row is the read-only projection of one ledger day for the reporting
// and export collaborators. No rendering happens here.
type Row struct {
	Date        string
	Weekday     string
	Punches     []string
	Worked      time.Duration
	PureBalance time.Duration // day balance with the manual adjustment backed out
	Adjustment  int           // minutes
	Note        string
	Open        bool // trailing unpaired punch: session still running
}

// Rows builds the projection for every recorded day, oldest first,
// optionally filtered to a "YYYY-MM" month.
func Rows(store *ledger.Store, cfg config.Config, month string) []Row {
	var rows []Row
	for _, date := range store.Dates() {
		if month != "" && !strings.HasPrefix(date, month) {
			continue
		}

		rec, _ := store.Record(date)
		res := DayBalance(date, rec, cfg, holidaysFor(date))

		row := Row{
			Date:        date,
			Punches:     rec.Punches,
			Worked:      res.Worked,
			PureBalance: res.Balance - time.Duration(rec.Adjustment)*time.Minute,
			Adjustment:  rec.Adjustment,
			Open:        len(rec.Punches)%2 != 0,
		}

		if day, err := time.Parse("2006-01-02", date); err == nil {
			row.Weekday = weekdayNames[day.Weekday()]
			row.Note = classify(rec, res, day)
		}

		rows = append(rows, row)
	}
	return rows
}

func classify(rec ledger.DayRecord, res Result, day time.Time) string {
	switch {
	case rec.Off && rec.Vacation:
		return NoteVacation
	case rec.Off:
		return NoteDayOff
	case res.Holiday:
		return NoteHoliday
	case day.Weekday() == time.Saturday || day.Weekday() == time.Sunday:
		return NoteWeekend
	}
	return ""
}
