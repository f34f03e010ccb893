package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evenlines/placement"
)

// runFlags holds the flag values of the run command.
type runFlags struct {
	configPath string
	outPath    string
	curves     int
	seed       int64
	ordered    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "evenlines",
		Short:         "Evenly-spaced streamline placement over a noise direction field",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newConfigCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Place streamlines and write them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlacement(cmd, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "YAML config file (defaults apply to omitted keys)")
	flags.StringVarP(&f.outPath, "out", "o", "", "output file (default stdout)")
	flags.IntVar(&f.curves, "curves", 0, "override max_curves")
	flags.Int64Var(&f.seed, "seed", 0, "override noise.seed")
	flags.BoolVar(&f.ordered, "ordered", true, "emit steps in drawing order instead of trace order")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging to stderr")
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := placement.DefaultConfig().YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// resolveConfig loads the config file, if any, and applies flag overrides.
func resolveConfig(cmd *cobra.Command, f runFlags) (placement.Config, error) {
	cfg := placement.DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = placement.LoadConfig(f.configPath); err != nil {
			return placement.Config{}, err
		}
	}
	if cmd.Flags().Changed("curves") {
		cfg.MaxCurves = f.curves
	}
	if cmd.Flags().Changed("seed") {
		cfg.Noise.Seed = f.seed
	}
	return cfg, cfg.Validate()
}

func runPlacement(cmd *cobra.Command, f runFlags) error {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	placement.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	res, err := placement.Run(cfg)
	if err != nil {
		return err
	}

	if f.outPath == "" {
		return res.WriteJSON(cmd.OutOrStdout(), f.ordered)
	}
	file, err := os.Create(f.outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	return writeResult(res, file, f.ordered)
}

// writeResult encodes res to wc and closes it. A close failure is returned
// when the encoding itself succeeded.
func writeResult(res *placement.Result, wc io.WriteCloser, ordered bool) (err error) {
	defer func() {
		if cerr := wc.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return res.WriteJSON(wc, ordered)
}
