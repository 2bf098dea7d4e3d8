package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/clock"
	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

var adjustCmd = LeafCommand{
	Use:   "adjust <date> <value>",
	Short: "Set a manual balance adjustment (minutes or ±HH:MM)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		return runAdjust(cmd, dir, args[0], args[1])
	},
}.Build()

func runAdjust(cmd *cobra.Command, dir, date, value string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	minutes := clock.ParseAdjustment(value)
	if minutes == 0 && strings.TrimSpace(value) != "0" && strings.TrimSpace(value) != "00:00" {
		return fmt.Errorf("invalid adjustment %q (expected minutes like 90 or a signed HH:MM)", value)
	}

	store := ledger.Load(dir)
	if err := store.SetAdjustment(date, minutes); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "adjustment for %s set to %s\n",
		Primary(date), Signed(clock.FormatSeconds(int64(minutes)*60)))
	return nil
}
