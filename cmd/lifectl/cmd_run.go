package main

import (
	"errors"
	"fmt"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/life"
	"lifegrid/internal/render"
	"lifegrid/internal/tui"

	"github.com/spf13/cobra"
)

type drawer interface {
	Bind(life.Surface)
	Draw()
}

func newRunCmd(cfg *app.Config) *cobra.Command {
	var (
		generations int
		pngPath     string
		printBoard  bool
	)
	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "Evolve a pattern headlessly and report the result",
		Long: "Evolve a pattern for a number of generations without a window.\n" +
			"Without a pattern file the board starts from the seeded random fill.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if generations < 0 {
				return fmt.Errorf("generations must not be negative, got %d", generations)
			}
			ctx := cmd.Context()
			logger := ctxlog.FromContext(ctx)

			if cfg.MetricsAddr != "" {
				stop, err := serveMetrics(ctx, cfg.MetricsAddr)
				if err != nil {
					return err
				}
				defer stop()
			}

			session, err := newSession(ctx, cfg, fileArg(args))
			if err != nil {
				return err
			}
			if fileArg(args) == "" && cfg.Pattern == "" {
				session.Do(app.ActionRandom)
			}

			board := session.Board()
			for i := 0; i < generations; i++ {
				session.Do(app.ActionStep)
				logger.Debug("generation", "n", session.Generation(), "population", board.Population())
			}

			out := cmd.OutOrStdout()
			if printBoard {
				fmt.Fprint(out, tui.Plain(board))
			}
			if pngPath != "" {
				if err := writePNG(board, cfg.Size, pngPath); err != nil {
					return err
				}
				logger.Info("wrote image", "path", pngPath)
			}
			fmt.Fprintf(out, "generation %d population %d\n", session.Generation(), board.Population())
			return nil
		},
	}
	cmd.Flags().IntVarP(&generations, "generations", "n", 1, "number of generations to evolve")
	cmd.Flags().StringVar(&pngPath, "png", "", "write the final board to this PNG file")
	cmd.Flags().BoolVar(&printBoard, "print", false, "print the final board in plaintext pattern format")
	return cmd
}

func writePNG(board app.Board, size int, path string) (err error) {
	d, ok := board.(drawer)
	if !ok {
		return errors.New("board cannot be drawn")
	}
	surface := render.NewImageSurface(size)
	d.Bind(surface)
	d.Draw()
	d.Bind(nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return surface.WritePNG(f)
}
