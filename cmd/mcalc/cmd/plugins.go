package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mcalc/foundation/utils/stringx"
	"github.com/msto63/mcalc/internal/command"
	"github.com/msto63/mcalc/internal/plugins"
)

const (
	statusActive   = "active"
	statusDisabled = "disabled"
	statusAbsent   = "not installed"
)

func newPluginsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the built-in plugins",
		Long: `Lists every plugin compiled into mcalc together with its status in
the configured plugins directory.

Examples:
  mcalc plugins
  mcalc plugins --plugins ./my-plugins`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Dry run into a scratch registry
			report, err := loadPlugins(command.NewRegistry(nil), io.Discard, opts)
			if err != nil {
				printError(cmd.ErrOrStderr(), "reading plugins directory", err)
				return err
			}

			status := make(map[string]string)
			for _, name := range report.Loaded {
				status[name] = statusActive
			}
			for _, name := range report.Skipped {
				status[name] = statusDisabled
			}
			for _, p := range plugins.Builtin().List() {
				if opts.cfg.IsPluginDisabled(p.Name) {
					status[p.Name] = statusDisabled
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Plugins directory: %s\n\n", opts.cfg.Shell.PluginsDir)
			fmt.Fprintf(out, "%s %s %s\n", stringx.PadRight("NAME", 10, ' '), stringx.PadRight("STATUS", 14, ' '), "COMMANDS")

			for _, p := range plugins.Builtin().List() {
				names := make([]string, 0, 1)
				for _, c := range p.Commands() {
					names = append(names, c.Name())
				}
				fmt.Fprintf(out, "%s %s %s\n",
					stringx.PadRight(p.Name, 10, ' '),
					stringx.PadRight(stringx.FromBlankDefault(status[p.Name], statusAbsent), 14, ' '),
					strings.Join(names, ", "))
			}
			return nil
		},
	}
}
