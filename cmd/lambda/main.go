package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/vito/lambda/pkg/ioctx"
)

func main() {
	var flags Config
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "lambda",
		Short: "Untyped lambda calculus playground",
		Long: `Lambda builds, prints, and beta-reduces terms of the untyped lambda
calculus, with a library of classic encodings to play with.`,
	}

	demoCmd := &cobra.Command{
		Use:   "demo [name...]",
		Short: "Reduce demo terms to beta normal form, printing each step",
		Example: `  # Reduce every demo
  lambda demo

  # Reduce selected demos
  lambda demo identity y-const

  # Spellings are normalized, so these name the same demo
  lambda demo shadowedPlus shadowed_plus shadowed-plus`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(debug)
			return runDemos(cmd.Context(), resolveConfig(cmd, flags), args)
		},
	}
	demoCmd.Flags().IntVar(&flags.MaxSteps, "max-steps", 1000, "Cap beta steps per term (0 for no cap)")
	demoCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Print only the final term of each demo")
	demoCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Dump the structure of each final term")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the available demo terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listDemos(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flags.ASCII, "ascii", false, "Render λ as a backslash")
	rootCmd.AddCommand(demoCmd, listCmd)

	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges lambda.toml settings with explicit flags, flags
// winning.
func resolveConfig(cmd *cobra.Command, flags Config) Config {
	cfg := defaultConfig()

	cwd, err := os.Getwd()
	if err == nil {
		path, found, err := FindConfig(cwd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load lambda.toml: %v\n", err)
		} else if found != nil {
			slog.Debug("loaded config", "path", path)
			cfg = *found
		}
	}

	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = flags.MaxSteps
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Quiet = flags.Quiet
	}
	if cmd.Flags().Changed("ascii") {
		cfg.ASCII = flags.ASCII
	}
	cfg.Verbose = flags.Verbose
	return cfg
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
