package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/wordhist/internal/chart"
	"github.com/nao1215/wordhist/internal/config"
	"github.com/nao1215/wordhist/internal/log"
	"github.com/nao1215/wordhist/internal/model"
	"github.com/nao1215/wordhist/internal/pipeline"
)

// newViewer creates the viewer used for charts that are not saved.
// Tests replace it to avoid opening windows.
var newViewer = func() *chart.Viewer {
	return chart.NewViewer(config.XDGCacheDir())
}

// runRootCmd executes the analysis.
func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Cancel between steps on interrupt.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runAnalysis(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// the command line, in increasing order of precedence. Only flags the user
// actually set override the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(file)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"text-output":       &cfg.TextOutput,
		"excel-output":      &cfg.ExcelOutput,
		"markdown-output":   &cfg.MarkdownOutput,
		"json-output":       &cfg.JSONOutput,
		"title":             &cfg.Title,
		"save-plot":         &cfg.SavePlot,
		"save-wordcloud":    &cfg.SaveWordCloud,
		"save-distribution": &cfg.SaveDistribution,
	} {
		if flags.Changed(name) {
			if *dst, err = flags.GetString(name); err != nil {
				return nil, err
			}
		}
	}
	for name, dst := range map[string]*int{
		"limit": &cfg.Limit,
		"top":   &cfg.Top,
	} {
		if flags.Changed(name) {
			if *dst, err = flags.GetInt(name); err != nil {
				return nil, err
			}
		}
	}
	for name, dst := range map[string]*bool{
		"no-plot":   &cfg.NoPlot,
		"wordcloud": &cfg.WordCloud,
		"progress":  &cfg.Progress,
	} {
		if flags.Changed(name) {
			if *dst, err = flags.GetBool(name); err != nil {
				return nil, err
			}
		}
	}

	if cmd.Flags().Changed("verbose") || cmd.Root().PersistentFlags().Changed("verbose") {
		cfg.Verbose = getVerboseFlag(cmd)
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}

	return cfg, nil
}

// runAnalysis runs the pipeline described by cfg.
func runAnalysis(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Debug("starting analysis",
		"input", cfg.Input,
		"textOutput", cfg.TextOutput,
		"excelOutput", cfg.ExcelOutput,
		"limit", cfg.Limit,
	)

	var viewer *chart.Viewer
	if (!cfg.NoPlot && cfg.SavePlot == "") || (cfg.WordCloud && cfg.WordCloudPath() == "") {
		viewer = newViewer()
	}

	p := pipeline.DefaultPipeline(cfg,
		pipeline.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()},
		viewer,
		pipeline.WithLogger(logger),
	)

	analysis := model.NewAnalysis(cfg.Input)
	if err := p.Execute(ctx, analysis); err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("analysis cancelled")
		}
		return err
	}

	logger.Debug("analysis completed",
		"steps", analysis.PerformedSteps,
		"artifacts", len(analysis.Artifacts),
		"skipped", len(analysis.Skipped),
	)
	return nil
}
