package main

import (
	"context"

	"github.com/spf13/cobra"

	"gdikit/internal/config"
	"gdikit/internal/render"
)

func newFillCmd(opts *options) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "不停地用纯色填满整个屏幕",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			if color != "" {
				s.cfg.Fill.Color = color
			}
			c, err := config.ParseColor(s.cfg.Fill.Color)
			if err != nil {
				return err
			}

			f := &render.Filler{
				Backend: s.backend,
				Window:  s.window,
				Color:   c,
				Log:     s.log,
			}
			return s.run("gdidemo fill", c, func(ctx context.Context) error {
				_, err := f.Run(ctx)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "填充颜色，如 #0000ff（覆盖配置文件）")
	return cmd
}
