package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries state shared by every command for one invocation.
type app struct {
	settings   *viper.Viper
	configPath string
	config     *domain.Configuration
	logger     *zap.Logger
	planner    *calculation.Planner
}

func newRootCmd() *cobra.Command {
	a := &app{settings: viper.New(), planner: calculation.NewPlanner()}

	rootCmd := &cobra.Command{
		Use:          "savings-planner",
		Short:        "Retirement savings calculator",
		Long:         "Project the balance needed at retirement and the monthly contributions that reach it.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Plan file (YAML, JSON or TOML)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (json, console)")
	flags.String("log-file", "", "Write logs to this file instead of stderr")

	a.settings.SetEnvPrefix("SAVINGS")
	a.settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.settings.AutomaticEnv()
	for _, name := range []string{"log-level", "log-format", "log-file"} {
		_ = a.settings.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newCalculateCmd(a),
		newCompareCmd(a),
		newExampleCmd(a),
		newFormatsCmd(),
		newServeCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the plan file, if any, and builds the logger. Flags win over
// SAVINGS_* environment variables, which win over the plan file's logging block.
func (a *app) setup() error {
	if a.configPath != "" {
		cfg, err := config.NewInputParser().LoadFromFile(a.configPath)
		if err != nil {
			return err
		}
		a.config = cfg
		a.settings.SetDefault("log-level", cfg.Logging.Level)
		a.settings.SetDefault("log-format", cfg.Logging.Format)
		a.settings.SetDefault("log-file", cfg.Logging.OutputFile)
	}

	format := a.settings.GetString("log-format")
	if format == "" {
		format = "console"
	}
	logger, err := logging.New(a.settings.GetString("log-level"), format, a.settings.GetString("log-file"))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	a.planner.SetLogger(logger.Sugar())
	return nil
}

// defaultFormat is the plan file's output format, or console.
func (a *app) defaultFormat() string {
	if a.config != nil && a.config.Output.Format != "" {
		return a.config.Output.Format
	}
	return "console"
}
