package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/config"
	"github.com/YannaMedova/controle-ponto/internal/importer"
	"github.com/YannaMedova/controle-ponto/internal/ledger"
)

var importCmd = LeafCommand{
	Use:   "import <file.pdf>",
	Short: "Import punches from a timesheet document",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "force", Usage: "re-import a duplicate document and overwrite affected days"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		forceFlag, _ := cmd.Flags().GetBool("force")
		return runImport(cmd, dir, args[0], forceFlag, NewPromptKit())
	},
}.Build()

func runImport(cmd *cobra.Command, dir, path string, force bool, pk PromptKit) error {
	cfg := config.Load(dir)
	imp := &importer.Importer{
		Store:   ledger.Load(dir),
		Config:  &cfg,
		DataDir: dir,
	}

	out := imp.ImportFile(path, force)

	// A duplicate is not an error: offer to overwrite instead.
	if out.Status == importer.StatusDuplicate {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s this document was already imported.\n", Warning("Warning:"))
		ok, err := pk.Confirm("Import again, overwriting the affected days?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		out = imp.ImportFile(path, true)
	}

	switch out.Status {
	case importer.StatusOK:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Positive("ok:"), out.Message)
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
			Silent(fmt.Sprintf("%d pages, %d lines matched, %d skipped",
				out.Report.Pages, out.Report.LinesMatched, out.Report.LinesSkipped)))
		return nil
	default:
		return fmt.Errorf("import failed: %s", out.Message)
	}
}
