package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

var offCmd = LeafCommand{
	Use:   "off <date>",
	Short: "Mark or clear a day off",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "clear", Usage: "clear the day-off mark instead of setting it"},
		{Name: "vacation", Usage: "mark the day off as vacation"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		clearFlag, _ := cmd.Flags().GetBool("clear")
		vacationFlag, _ := cmd.Flags().GetBool("vacation")
		return runOff(cmd, dir, args[0], clearFlag, vacationFlag)
	},
}.Build()

func runOff(cmd *cobra.Command, dir, date string, clear, vacation bool) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	store := ledger.Load(dir)
	if err := store.SetDayOff(date, !clear, vacation); err != nil {
		return err
	}

	switch {
	case clear:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is a working day again\n", Primary(date))
	case vacation:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s marked as vacation\n", Primary(date))
	default:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s marked as day off\n", Primary(date))
	}
	return nil
}
