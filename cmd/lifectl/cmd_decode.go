package main

import (
	"fmt"

	"lifegrid/internal/ctxlog"
	"lifegrid/internal/pattern"

	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE",
		Short: "Decode a .cells or .rle file and describe it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, diag, err := pattern.Load(args[0])
			if err != nil {
				return err
			}
			logIgnored(ctxlog.FromContext(cmd.Context()), args[0], diag)

			out := cmd.OutOrStdout()
			name, ok := p.Name()
			if !ok {
				name = "(unnamed)"
			}
			dim := p.Dimensions()
			fmt.Fprintf(out, "name: %s\n", name)
			fmt.Fprintf(out, "cells: %d\n", p.Len())
			fmt.Fprintf(out, "extent: %dx%d\n", dim.Width, dim.Height)
			for _, line := range p.Metadata() {
				fmt.Fprintf(out, "meta: %s\n", line)
			}
			for _, ig := range diag.Ignored {
				fmt.Fprintf(out, "ignored: %q at %d:%d\n", ig.Char, ig.Line, ig.Column)
			}
			return nil
		},
	}
}
