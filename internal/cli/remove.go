package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

var removeCmd = LeafCommand{
	Use:   "remove <date> <time>",
	Short: "Delete a single punch from a day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		return runRemove(cmd, dir, args[0], args[1])
	},
}.Build()

func runRemove(cmd *cobra.Command, dir, date, punch string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	store := ledger.Load(dir)
	removed, err := store.RemovePunch(date, punch)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("no punch %s recorded on %s", punch, date)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s from %s\n", Primary(punch), Primary(date))
	return nil
}
