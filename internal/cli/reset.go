package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/config"
)

var resetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restart the running total from today (history is kept)",
	Args:  cobra.NoArgs,
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
		return runReset(cmd, dir, pk, time.Now)
	},
}.Build()

func runReset(cmd *cobra.Command, dir string, pk PromptKit, nowFn func() time.Time) error {
	ok, err := pk.Confirm("Zero the running balance and start counting from today?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	// Irreversible for the displayed total, hence a second confirmation.
	ok, err = pk.Confirm("The old balance will no longer count. Are you sure?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	today := nowFn().Format("2006-01-02")
	cfg := config.Load(dir)
	cfg.CountingStart = &today
	if err := config.Save(dir, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "running total restarted; counting from %s\n", Primary(today))
	return nil
}
