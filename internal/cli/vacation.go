package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

var vacationCmd = LeafCommand{
	Use:   "vacation <start> <end>",
	Short: "Mark an inclusive date range as vacation",
	Args:  cobra.ExactArgs(2),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompts"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		pk := NewPromptKit()
		if yes, _ := cmd.Flags().GetBool("yes"); yes {
			pk.Confirm = AlwaysYes()
		}
		return runVacation(cmd, dir, args[0], args[1], pk)
	},
}.Build()

func runVacation(cmd *cobra.Command, dir, start, end string, pk PromptKit) error {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", start)
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return fmt.Errorf("invalid end date %q (expected YYYY-MM-DD)", end)
	}
	if to.Before(from) {
		return fmt.Errorf("end date %s precedes start date %s", end, start)
	}

	days := int(to.Sub(from).Hours()/24) + 1
	ok, err := pk.Confirm(fmt.Sprintf("Mark %d day(s) from %s to %s as vacation?", days, start, end))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	store := ledger.Load(dir)
	if err := store.SetVacationRange(start, end); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "vacation recorded from %s to %s (%d days)\n",
		Primary(start), Primary(end), days)
	return nil
}
