package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/heartmarshall/zhdict/internal/adapter/sink"
	"github.com/heartmarshall/zhdict/internal/app"
	"github.com/heartmarshall/zhdict/internal/config"
	"github.com/heartmarshall/zhdict/internal/domain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "zhdict",
		Short:        "Chinese dictionary lookup with English glosses",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ./config.yaml or $XDG_CONFIG_HOME/zhdict/config.yaml)")

	root.AddCommand(
		newLookupCmd(&configPath),
		newBatchCmd(afero.NewOsFs(), &configPath),
		newVersionCmd(),
	)
	return root
}

func newLookupCmd(configPath *string) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "lookup WORD...",
		Short: "look up one or more words and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*configPath)
			if err != nil {
				return err
			}

			reqs := make([]domain.LookupRequest, 0, len(args))
			for i, word := range args {
				reqs = append(reqs, domain.NewLookupRequest(word, fmt.Sprintf("arg:%d", i+1)))
			}
			return run(cmd, a, reqs, cmd.OutOrStdout(), pick(outputFormat, a.Config.Output.Format))
		},
	}
	cmd.Flags().StringVar(&outputFormat, "format", "", "output format: text or tsv (default from config)")
	return cmd
}

func newBatchCmd(fs afero.Fs, configPath *string) *cobra.Command {
	var input, output, outputFormat string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "look up every word of a word list, one word per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(*configPath)
			if err != nil {
				return err
			}

			var reqs []domain.LookupRequest
			if input == "-" {
				reqs, err = app.ParseWordList(cmd.InOrStdin(), "stdin")
			} else {
				reqs, err = app.ReadWordList(fs, input)
			}
			if err != nil {
				return err
			}

			format := pick(outputFormat, a.Config.Output.Format)
			path := pick(output, a.Config.Output.Path)
			if path == "" || path == "-" {
				return run(cmd, a, reqs, cmd.OutOrStdout(), format)
			}

			w, err := sink.Open(fs, path, format)
			if err != nil {
				return err
			}
			return finish(cmd, a, reqs, w)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "word list file, - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default from config)")
	cmd.Flags().StringVar(&outputFormat, "format", "", "output format: text or tsv (default from config)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "zhdict", app.BuildVersion())
		},
	}
}

// setup loads configuration, installs the logger and wires the application.
func setup(configPath string) (*app.App, error) {
	if configPath != "" {
		if err := os.Setenv("CONFIG_PATH", configPath); err != nil {
			return nil, fmt.Errorf("set config path: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting zhdict", slog.String("version", app.BuildVersion()))
	return app.New(cfg, logger)
}

func run(cmd *cobra.Command, a *app.App, reqs []domain.LookupRequest, out io.Writer, format string) error {
	w, err := sink.New(out, format)
	if err != nil {
		return err
	}
	return finish(cmd, a, reqs, w)
}

func finish(cmd *cobra.Command, a *app.App, reqs []domain.LookupRequest, w *sink.Writer) error {
	stats := a.Process(cmd.Context(), reqs, w)
	if err := w.Close(); err != nil {
		return err
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", stats.Failed, len(reqs))
	}
	if stats.Pending > 0 {
		return fmt.Errorf("interrupted with %d lookups pending", stats.Pending)
	}
	return nil
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
