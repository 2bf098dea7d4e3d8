package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/clock"
	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

var editCmd = LeafCommand{
	Use:   "edit <date> <old-time> <new-time>",
	Short: "Replace a recorded punch with a corrected time",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		return runEdit(cmd, dir, args[0], args[1], args[2])
	},
}.Build()

func runEdit(cmd *cobra.Command, dir, date, oldTime, newTime string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	if !clock.Valid(newTime) {
		return fmt.Errorf("invalid time %q (expected HH:MM)", newTime)
	}

	store := ledger.Load(dir)
	changed, err := store.EditPunch(date, oldTime, newTime)
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("no punch %s recorded on %s", oldTime, date)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s to %s on %s\n",
		Primary(oldTime), Primary(newTime), Primary(date))
	return nil
}
