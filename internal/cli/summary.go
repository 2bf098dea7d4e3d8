package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/balance"
	"github.com/YannaMedova/controle-ponto/internal/clock"
	"github.com/YannaMedova/controle-ponto/internal/config"
	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

var summaryCmd = LeafCommand{
	Use:   "summary",
	Short: "Show monthly totals and the running balance",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "month", Usage: "month to summarize (YYYY-MM, default: current)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		month, _ := cmd.Flags().GetString("month")
		return runSummary(cmd, dir, month, time.Now)
	},
}.Build()

func runSummary(cmd *cobra.Command, dir, month string, nowFn func() time.Time) error {
	store := ledger.Load(dir)
	cfg := config.Load(dir)

	sum := balance.MonthSummary(store, cfg, month, nowFn())

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Header(sum.Month))
	_, _ = fmt.Fprintf(w, "worked:    %s\n", clock.FormatSeconds(int64(sum.Worked.Seconds())))
	_, _ = fmt.Fprintf(w, "expected:  %s\n", clock.FormatSeconds(int64(sum.Expected.Seconds())))
	_, _ = fmt.Fprintf(w, "month:     %s\n", Signed(clock.FormatSeconds(int64(sum.Balance.Seconds()))))
	_, _ = fmt.Fprintf(w, "carried:   %s\n", Signed(clock.FormatSeconds(int64(sum.Carried.Seconds()))))
	_, _ = fmt.Fprintf(w, "total:     %s\n", Signed(clock.FormatSeconds(int64(sum.Total.Seconds()))))
	return nil
}
