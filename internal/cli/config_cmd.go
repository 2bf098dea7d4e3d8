package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/YannaMedova/controle-ponto/internal/config"
)

// configKeys maps the public setting names to accessors on the config
// struct. The names match the historical JSON keys on purpose.
var configKeys = map[string]struct {
	get func(config.Config) string
	set func(*config.Config, string) error
}{
	"meta_diaria": {
		get: func(c config.Config) string { return formatFloat(c.DailyTargetHours) },
		set: func(c *config.Config, v string) error { return setFloat(&c.DailyTargetHours, v) },
	},
	"fator_dia_util": {
		get: func(c config.Config) string { return formatFloat(c.WeekdayFactor) },
		set: func(c *config.Config, v string) error { return setFactor(&c.WeekdayFactor, v) },
	},
	"fator_fds": {
		get: func(c config.Config) string { return formatFloat(c.WeekendFactor) },
		set: func(c *config.Config, v string) error { return setFactor(&c.WeekendFactor, v) },
	},
	"tema_inicial": {
		get: func(c config.Config) string { return c.Theme },
		set: func(c *config.Config, v string) error {
			if v != "light" && v != "dark" {
				return fmt.Errorf("invalid theme %q (expected light or dark)", v)
			}
			c.Theme = v
			return nil
		},
	},
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func setFloat(dst *float64, v string) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return fmt.Errorf("invalid value %q (expected a positive number)", v)
	}
	*dst = f
	return nil
}

// setFactor accepts zero: a zero factor is a real policy (no weekend
// credit, no overtime bonus), only the daily target must stay positive.
func setFactor(dst *float64, v string) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return fmt.Errorf("invalid value %q (expected a number >= 0)", v)
	}
	*dst = f
	return nil
}

var configGetCmd = LeafCommand{
	Use:   "get [key]",
	Short: "Show one setting, or all settings without a key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		key := ""
		if len(args) == 1 {
			key = args[0]
		}
		return runConfigGet(cmd, dir, key)
	},
}.Build()

var configSetCmd = LeafCommand{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, dir, args[0], args[1])
	},
}.Build()

var configCmd = GroupCommand{
	Use:         "config",
	Short:       "Inspect and change settings",
	Subcommands: []*cobra.Command{configGetCmd, configSetCmd},
}.Build()

func runConfigGet(cmd *cobra.Command, dir, key string) error {
	cfg := config.Load(dir)

	if key != "" {
		entry, ok := configKeys[key]
		if !ok {
			return fmt.Errorf("unknown setting %q", key)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), entry.get(cfg))
		return nil
	}

	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", Primary(k), configKeys[k].get(cfg))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, dir, key, value string) error {
	entry, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown setting %q", key)
	}

	cfg := config.Load(dir)
	if err := entry.set(&cfg, value); err != nil {
		return err
	}
	if err := config.Save(dir, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", Primary(key), entry.get(cfg))
	return nil
}
