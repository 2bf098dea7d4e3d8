package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

var deleteCmd = LeafCommand{
	Use:   "delete <date>",
	Short: "Delete a whole day's records",
	Args:  cobra.ExactArgs(1),
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
		return runDelete(cmd, dir, args[0], pk)
	},
}.Build()

func runDelete(cmd *cobra.Command, dir, date string, pk PromptKit) error {
	store := ledger.Load(dir)
	if _, found := store.Record(date); !found {
		return fmt.Errorf("no records for %s", date)
	}

	ok, err := pk.Confirm(fmt.Sprintf("Delete every record for %s?", date))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := store.DeleteDay(date); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", Primary(date))
	return nil
}
