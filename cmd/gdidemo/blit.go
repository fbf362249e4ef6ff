package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"gdikit/internal/gdi"
	"gdikit/internal/imageload"
	"gdikit/internal/render"
)

func newBlitCmd(opts *options) *cobra.Command {
	var (
		imagePath string
		maxWidth  int
		maxHeight int
	)

	cmd := &cobra.Command{
		Use:   "blit [image]",
		Short: "不停地把一张图片拉伸铺满整个屏幕",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			if len(args) == 1 {
				s.cfg.Blit.Image = args[0]
			}
			if imagePath != "" {
				s.cfg.Blit.Image = imagePath
			}
			if cmd.Flags().Changed("max-width") {
				s.cfg.Blit.MaxWidth = maxWidth
			}
			if cmd.Flags().Changed("max-height") {
				s.cfg.Blit.MaxHeight = maxHeight
			}
			if s.cfg.Blit.Image == "" {
				return errors.New("未指定图片，使用 --image 或在配置文件中设置 blit.image")
			}

			img, err := imageload.Load(s.cfg.Blit.Image)
			if err != nil {
				return err
			}
			img = imageload.Fit(img, s.cfg.Blit.MaxWidth, s.cfg.Blit.MaxHeight)

			b := &render.Blitter{
				Backend: s.backend,
				Window:  s.window,
				Log:     s.log,
			}
			return s.run("gdidemo blit", s.trayColor(), func(ctx context.Context) error {
				// 位图在绘制线程上创建和删除
				bm, err := imageload.NewBitmap(s.backend, img)
				if err != nil {
					return err
				}
				defer bm.Close()

				s.log.WithField("bitmap", gdi.NewRect(0, 0, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()))).Info("开始拉伸绘制")
				_, err = b.Run(ctx, bm)
				return err
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&imagePath, "image", "", "图片路径（png/jpeg/gif/bmp/tiff/webp）")
	flags.IntVar(&maxWidth, "max-width", 0, "上传前缩小到此宽度以内，0 表示不限制")
	flags.IntVar(&maxHeight, "max-height", 0, "上传前缩小到此高度以内，0 表示不限制")
	return cmd
}
