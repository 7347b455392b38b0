package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mclog "github.com/msto63/mcalc/foundation/core/log"
	"github.com/msto63/mcalc/foundation/utils/mathx"
	"github.com/msto63/mcalc/internal/calculator"
	"github.com/msto63/mcalc/internal/command"
	"github.com/msto63/mcalc/internal/plugin"
	"github.com/msto63/mcalc/internal/plugins"
	"github.com/msto63/mcalc/internal/shell"
	"github.com/msto63/mcalc/pkg/core/config"
	"github.com/msto63/mcalc/pkg/core/logging"
)

const usage = "Usage: mcalc <number1> <number2> <operation>"

// errUsage makes the process exit with status 1 after the usage line
var errUsage = errors.New("invalid arguments")

// options holds the persistent flags
type options struct {
	cfgFile    string
	pluginsDir string
	logLevel   string

	cfg    *config.Config
	logger *logging.Logger
}

// valueFlags take their value from the following argument
var valueFlags = map[string]bool{"--config": true, "--plugins": true, "--log-level": true}

// Execute runs the root command with the process arguments
func Execute() error {
	return executeArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func executeArgs(args []string, in io.Reader, out, errOut io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(positionalArgs(args))
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd.Execute()
}

// positionalArgs inserts "--" before the first negative number so that
// operands like -3 are not parsed as shorthand flags. Flags after that
// point are treated as operands.
func positionalArgs(args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case valueFlags[arg]:
			i++
		case strings.HasPrefix(arg, "-"):
			if _, err := mathx.NewDecimal(arg); err != nil {
				continue
			}
			fixed := make([]string, 0, len(args)+1)
			fixed = append(fixed, args[:i]...)
			fixed = append(fixed, "--")
			return append(fixed, args[i:]...)
		}
	}
	return args
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "mcalc [number1 number2 operation]",
		Short: "mcalc - Interactive Decimal Calculator",
		Long: `mcalc is a decimal calculator with an interactive shell.

Without arguments it starts the shell and activates the plugins found in
the plugins directory. With three arguments it computes a single result.

Examples:
  mcalc                      # Interactive shell
  mcalc 5 3 add              # The result of 5 add 3 is equal to 8
  mcalc 1 3 divide           # 28 significant digits
  mcalc -5 3 subtract        # Negative operands need no quoting`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return runShell(cmd, opts)
			case 3:
				return runSingleShot(cmd, opts, args)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return errUsage
			}
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		printError(cmd.ErrOrStderr(), "invalid arguments", err)
		fmt.Fprintln(cmd.ErrOrStderr(), usage)
		return errUsage
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "Config file (default: ./configs/config.toml)")
	flags.StringVar(&opts.pluginsDir, "plugins", "", "Plugins directory (overrides shell.plugins_dir)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPluginsCmd(opts))

	return rootCmd
}

// setup loads the configuration, applies flag overrides and creates the
// logger. Logs go to stderr.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, path, err := config.Discover(o.cfgFile)
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		printError(cmd.ErrOrStderr(), "loading config", err)
		return err
	}

	if o.pluginsDir != "" {
		cfg.Shell.PluginsDir = o.pluginsDir
	}
	if o.logLevel != "" {
		if _, err := mclog.ParseLevel(o.logLevel); err != nil {
			printError(cmd.ErrOrStderr(), "invalid --log-level", err)
			return err
		}
		cfg.General.LogLevel = o.logLevel
	}

	o.cfg = cfg
	o.logger = logging.Wrap(logging.NewLogger(logging.LoggerConfig{
		Name:   cfg.General.Name,
		Level:  cfg.General.LogLevel,
		Format: cfg.General.LogFormat,
		Output: cmd.ErrOrStderr(),
	}))
	o.logger.Debug("configuration loaded",
		"path", path,
		"plugins_dir", cfg.Shell.PluginsDir,
		"log_level", o.logger.GetLevel().String(),
	)
	return nil
}

// runSingleShot prints exactly one line for <number1> <number2> <operation>
func runSingleShot(cmd *cobra.Command, opts *options, args []string) error {
	calc := calculator.New(nil, opts.logger.Named("calculator"))

	result, err := calc.EvaluateNamed(args[0], args[1], args[2])
	if err != nil {
		opts.logger.LogError(err)
		fmt.Fprintln(cmd.OutOrStdout(), calculator.Describe(err))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Sentence())
	return nil
}

// runShell activates the plugins and runs the interactive shell
func runShell(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()

	registry := command.NewRegistry(opts.logger.Named("registry"))
	if _, err := loadPlugins(registry, out, opts); err != nil {
		printError(cmd.ErrOrStderr(), "loading plugins", err)
		return err
	}

	sh, err := shell.New(registry, shell.Config{
		Prompt: opts.cfg.Shell.Prompt,
		In:     cmd.InOrStdin(),
		Out:    out,
		Logger: opts.logger,
	})
	if err != nil {
		printError(cmd.ErrOrStderr(), "starting shell", err)
		return err
	}
	defer sh.Close()

	if err := sh.Run(cmd.Context()); err != nil {
		printError(cmd.ErrOrStderr(), "shell", err)
		return err
	}
	return nil
}

// loadPlugins registers the commands of every active plugin. Progress
// messages go to out.
func loadPlugins(registry *command.Registry, out io.Writer, opts *options) (*plugin.Report, error) {
	loader := plugin.NewLoader(plugins.Builtin(), registry, out, opts.logger.Named("plugin"))
	loader.Disable(opts.cfg.Plugins.Disabled...)
	return loader.Load(opts.cfg.Shell.PluginsDir)
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Error: %s: %v\n", msg, err)
}
