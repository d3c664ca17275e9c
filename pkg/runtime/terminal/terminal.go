package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/profit-report/pkg/runtime/terminal/commands"
	"github.com/de-tools/profit-report/pkg/runtime/terminal/export"
	"github.com/de-tools/profit-report/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	session  *commands.Session
	cfgPath  string
	logLevel string
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Input     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{session: &commands.Session{}}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetIn(opts.Input)
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOutput)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// ExecuteContext runs the command tree with explicit arguments instead of os.Args.
func (cli *CLI) ExecuteContext(ctx context.Context, args ...string) error {
	cli.rootCmd.SetArgs(append([]string{}, args...))
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := commands.NewReportCmd(cli.session, map[string]func(*cobra.Command) commands.ReportHandler{
		config.FormatText: func(c *cobra.Command) commands.ReportHandler {
			return NewReporter(c.OutOrStdout())
		},
		config.FormatTable: func(c *cobra.Command) commands.ReportHandler {
			return export.NewReporter(c.OutOrStdout())
		},
	})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.PersistentPreRunE = cli.setup

	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "", "Path to a settings file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from settings)")

	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}

// setup loads settings and attaches a logger to the command context.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(cli.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if cli.logLevel != "" {
		settings.LogLevel = cli.logLevel
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx))

	cli.session.Settings = settings
	logger.Debug().
		Str("config", cli.cfgPath).
		Str("currency", settings.Currency).
		Str("format", settings.Format).
		Msg("settings loaded")

	return nil
}
