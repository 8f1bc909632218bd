package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/planning-engine/internal/calculation"
	"github.com/rpgo/planning-engine/internal/config"
	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/rpgo/planning-engine/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	format     string
	outputDir  string
	logLevel   string
	logger     *logrus.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "planner",
		Short:         "Real-estate acquisition and retirement planning calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(opts.logLevel)
			opts.logger.SetOutput(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (YAML)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "console", "output format: "+strings.Join(output.AvailableFormatterNames(), ", ")+" or all")
	root.PersistentFlags().StringVarP(&opts.outputDir, "output", "o", "", "directory for report files; stdout when empty")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRunCommand(opts),
		newCompareCommand(opts),
		newRetireCommand(opts),
		newExampleConfigCommand(opts),
		newFormatsCommand(),
		newServeCommand(opts),
	)
	return root
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run every block of the configuration and render the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return opts.report(cmd, cfg)
		},
	}
}

func newCompareCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare financing, consortium and cash purchase for the acquisition block",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Acquisition == nil {
				return fmt.Errorf("%s has no acquisition block", opts.configPath)
			}
			cfg.Retirement = nil
			return opts.report(cmd, cfg)
		},
	}
}

func newRetireCommand(opts *rootOptions) *cobra.Command {
	var (
		solve   bool
		horizon string
		view    string
	)
	cmd := &cobra.Command{
		Use:   "retire",
		Short: "Project retirement capital for the retirement block",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Retirement == nil {
				return fmt.Errorf("%s has no retirement block", opts.configPath)
			}
			cfg.Acquisition = nil
			if solve {
				cfg.Retirement.SolveContribution = true
			}
			if horizon != "" {
				cfg.Retirement.HorizonPreset = horizon
			}
			if view != "" {
				cfg.Retirement.View = view
			}
			return opts.report(cmd, cfg)
		},
	}
	cmd.Flags().BoolVar(&solve, "solve-contribution", false, "simulate with the solved monthly contribution")
	cmd.Flags().StringVar(&horizon, "horizon", "", "retirement horizon preset: full, 10y, 20y or 30y")
	cmd.Flags().StringVar(&view, "view", "", "trajectory rows to render: full, 10y, 20y or 30y")
	return cmd
}

func newExampleConfigCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.MarshalConfiguration(config.NewInputParser().CreateExampleConfiguration())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			opts.logger.WithField("file", args[0]).Info("example configuration written")
			return nil
		},
	}
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and aliases",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(out, "aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}

func (o *rootOptions) load() (*domain.Configuration, error) {
	if o.configPath == "" {
		return nil, fmt.Errorf("--config is required")
	}
	cfg, err := config.NewInputParser().LoadFromFile(o.configPath)
	if err != nil {
		return nil, err
	}
	o.logger.WithField("file", o.configPath).Debug("configuration loaded")
	return cfg, nil
}

func (o *rootOptions) report(cmd *cobra.Command, cfg *domain.Configuration) error {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(o.logger)

	report, err := engine.RunConfiguration(context.Background(), cfg)
	if err != nil {
		return err
	}

	if o.outputDir == "" {
		if output.NormalizeFormatName(o.format) == "all" {
			return fmt.Errorf("format all requires --output")
		}
		data, err := output.Render(report, o.format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.MkdirAll(o.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", o.outputDir, err)
	}
	files, err := output.GenerateReport(report, o.format, o.outputDir)
	if err != nil {
		return err
	}
	for _, f := range files {
		o.logger.WithField("file", f).Info("report written")
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
