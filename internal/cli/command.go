package cli

import "github.com/spf13/cobra"

// BoolFlag declares an on/off flag on a leaf command.
type BoolFlag struct {
	Name    string
	Usage   string
	Default bool
}

// StringFlag declares a string-valued flag on a leaf command.
type StringFlag struct {
	Name    string
	Usage   string
	Default string
}

// LeafCommand describes one executable command: usage line, flags and
// the RunE doing the work. Each command file declares a LeafCommand
// literal and turns it into a cobra command with Build().
type LeafCommand struct {
	Use       string
	Short     string
	Args      cobra.PositionalArgs
	BoolFlags []BoolFlag
	StrFlags  []StringFlag
	RunE      func(cmd *cobra.Command, args []string) error
}

// Build assembles the cobra command and registers its declared flags.
func (lc LeafCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:   lc.Use,
		Short: lc.Short,
		Args:  lc.Args,
		RunE:  lc.RunE,
	}
	for _, f := range lc.BoolFlags {
		cmd.Flags().Bool(f.Name, f.Default, f.Usage)
	}
	for _, f := range lc.StrFlags {
		cmd.Flags().String(f.Name, f.Default, f.Usage)
	}
	return cmd
}

// GroupCommand describes a command that exists only to group subcommands
// under a shared name, like "config".
type GroupCommand struct {
	Use         string
	Short       string
	Subcommands []*cobra.Command
}

// Build assembles the group and attaches its subcommands.
func (gc GroupCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:   gc.Use,
		Short: gc.Short,
	}
	for _, sub := range gc.Subcommands {
		cmd.AddCommand(sub)
	}
	return cmd
}
