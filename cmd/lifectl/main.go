// Command lifectl decodes, runs and plays Game of Life patterns without the
// GUI build.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/ctxlog"
	_ "lifegrid/internal/life"
	"lifegrid/internal/pattern"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds a fresh command tree so tests can drive the CLI end to end.
func run(out io.Writer, args []string) error {
	root := newRootCmd()
	root.SetOut(out)
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	cfg := app.NewConfig()
	var configPath string

	root := &cobra.Command{
		Use:           "lifectl",
		Short:         "Decode, evolve and play Game of Life patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd.Flags(), cfg, configPath); err != nil {
				return err
			}
			level, err := ctxlog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	fs := flag.NewFlagSet("lifectl", flag.ContinueOnError)
	cfg.Bind(fs)
	root.PersistentFlags().AddGoFlagSet(fs)
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with default settings")

	root.AddCommand(newDecodeCmd(), newRunCmd(cfg), newTUICmd(cfg))
	return root
}

// loadConfig overlays the file at path onto cfg. Flags set on the command
// line win over the file.
func loadConfig(flags *pflag.FlagSet, cfg *app.Config, path string) error {
	if path != "" {
		explicit := map[string]string{}
		flags.Visit(func(f *pflag.Flag) { explicit[f.Name] = f.Value.String() })

		if err := cfg.LoadFile(path); err != nil {
			return err
		}
		for name, value := range explicit {
			if err := flags.Set(name, value); err != nil {
				return fmt.Errorf("reapply --%s: %w", name, err)
			}
		}
	}
	return cfg.Validate()
}

// newSession builds the configured board, loads the pattern file if one is
// given, and wraps the board in a session.
func newSession(ctx context.Context, cfg *app.Config, file string) (*app.Session, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	board, ok := factory(cfg.SimConfig()).(app.Board)
	if !ok {
		return nil, fmt.Errorf("sim %q does not support editing", cfg.Sim)
	}
	session := app.NewSession(board, cfg.Interval, cfg.Seed)

	if file == "" {
		file = cfg.Pattern
	}
	if file == "" {
		return session, nil
	}
	p, diag, err := pattern.Load(file)
	if err != nil {
		return nil, err
	}
	logIgnored(ctxlog.FromContext(ctx), file, diag)
	session.Load(p)
	return session, nil
}

func logIgnored(logger *slog.Logger, file string, diag pattern.Diagnostics) {
	for _, ig := range diag.Ignored {
		logger.Debug("ignored character", "file", file, "char", string(ig.Char), "line", ig.Line, "column", ig.Column)
	}
	if n := len(diag.Ignored); n > 0 {
		logger.Warn("pattern has unrecognised characters", "file", file, "count", n)
	}
}

func fileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
