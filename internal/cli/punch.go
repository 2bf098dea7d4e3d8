package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/clock"
	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

var punchCmd = LeafCommand{
	Use:   "punch [HH:MM]",
	Short: "Record a clock punch (defaults to now)",
	Args:  cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "date", Usage: "date to punch on (YYYY-MM-DD, default: today)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")

		var timeArg string
		if len(args) > 0 {
			timeArg = args[0]
		}
		return runPunch(cmd, dir, timeArg, dateFlag, time.Now)
	},
}.Build()

// resolveDate validates a --date flag, defaulting to today. Rejected
// input never reaches the ledger.
func resolveDate(dateFlag string, now time.Time) (string, error) {
	if dateFlag == "" {
		return now.Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", dateFlag); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", dateFlag)
	}
	return dateFlag, nil
}

func runPunch(cmd *cobra.Command, dir, timeArg, dateFlag string, nowFn func() time.Time) error {
	now := nowFn()

	date, err := resolveDate(dateFlag, now)
	if err != nil {
		return err
	}

	punch := timeArg
	if punch == "" {
		punch = now.Format("15:04")
	}
	if !clock.Valid(punch) {
		return fmt.Errorf("invalid time %q (expected HH:MM)", punch)
	}

	store := ledger.Load(dir)
	added, err := store.AddPunch(date, punch)
	if err != nil {
		return err
	}
	if !added {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s already recorded for %s\n",
			Warning("Warning:"), Primary(punch), Primary(date))
		return nil
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "punched %s on %s\n", Primary(punch), Primary(date))
	return nil
}
