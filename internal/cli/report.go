package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/balance"
	"github.com/YannaMedova/controle-ponto/internal/clock"
	"github.com/YannaMedova/controle-ponto/internal/config"
	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

var reportCmd = LeafCommand{
	Use:   "report",
	Short: "Show the day-by-day ledger with balances",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "month", Usage: "filter to a month (YYYY-MM, default: all history)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		monthFlag, _ := cmd.Flags().GetString("month")
		return runReport(cmd, dir, monthFlag)
	},
}.Build()

func runReport(cmd *cobra.Command, dir, month string) error {
	store := ledger.Load(dir)
	cfg := config.Load(dir)

	rows := balance.Rows(store, cfg, month)
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent("no records"))
		return nil
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Header(fmt.Sprintf(
		"%-10s  %-4s  %-35s  %6s  %7s  %7s  %s",
		"Date", "Day", "Punches", "Worked", "Balance", "Adjust", "Note")))

	for _, row := range rows {
		punches := strings.Join(row.Punches, " | ")
		if row.Open {
			punches += " …"
		}

		_, _ = fmt.Fprintf(w, "%-10s  %-4s  %-35s  %6s  %7s  %7s  %s\n",
			row.Date,
			row.Weekday,
			punches,
			clock.FormatSeconds(int64(row.Worked.Seconds())),
			Signed(clock.FormatSeconds(int64(row.PureBalance.Seconds()))),
			clock.FormatSeconds(int64(row.Adjustment)*60),
			Silent(row.Note),
		)
	}
	return nil
}
