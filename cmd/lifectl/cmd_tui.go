package main

import (
	"context"
	"errors"

	"lifegrid/internal/app"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/pattern"
	"lifegrid/internal/tui"
	"lifegrid/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [FILE]",
		Short: "Play with the board in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if cfg.MetricsAddr != "" {
				stop, err := serveMetrics(ctx, cfg.MetricsAddr)
				if err != nil {
					return err
				}
				defer stop()
			}

			file := fileArg(args)
			if file == "" {
				file = cfg.Pattern
			}
			session, err := newSession(ctx, cfg, file)
			if err != nil {
				return err
			}

			prog := tea.NewProgram(tui.New(session),
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)

			if cfg.Watch && file != "" {
				w, err := watch.New(file, watch.DefaultDebounce)
				if err != nil {
					return err
				}
				defer w.Close()
				go func() {
					err := w.Run(ctx, func(p pattern.Pattern, _ pattern.Diagnostics) {
						prog.Send(tui.ReloadMsg{Pattern: p})
					})
					if err != nil && !errors.Is(err, context.Canceled) {
						prog.Send(tui.ErrMsg{Err: err})
					}
				}()
			}

			_, err = prog.Run()
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}
			ctxlog.FromContext(ctx).Debug("tui closed", "generation", session.Generation())
			return err
		},
	}
}
