// Package render 实现两个演示程序的逐帧绘制：全屏纯色填充和全屏拉伸位图。
//
// 每一帧都会重新查询设备尺寸，循环不做节流，直到 ctx 被取消。
// 所有 GDI 句柄只在调用 Loop 的 goroutine 上使用。
package render

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"gdikit/internal/gdi"
)

// Stats 循环统计
type Stats struct {
	Frames  uint64 // 成功绘制的帧数
	Skipped uint64 // 跳过的帧数（填充失败）
}

// Frame 绘制一帧。返回 false 表示本帧跳过，返回 error 表示需要上报并停止。
type Frame func() (bool, error)

// Loop 不停绘制直到 ctx 取消或 frame 返回错误
func Loop(ctx context.Context, frame Frame) (Stats, error) {
	var stats Stats
	for {
		select {
		case <-ctx.Done():
			return stats, nil
		default:
		}

		ok, err := frame()
		if err != nil {
			return stats, err
		}
		if ok {
			stats.Frames++
		} else {
			stats.Skipped++
		}
	}
}

// FillFrame 用画刷填满整个设备
func FillFrame(dc *gdi.DeviceContext, brush *gdi.Brush) bool {
	return dc.FillRect(dc.Bounds(), brush)
}

// StretchFrame 将 src 的 srcRect 拉伸到整个 dst
func StretchFrame(dst, src *gdi.DeviceContext, srcRect gdi.Rect) error {
	return dst.StretchBlt(dst.Bounds(), src, srcRect, gdi.SrcCopy)
}

// Filler 全屏纯色填充
type Filler struct {
	Backend gdi.Backend
	Window  gdi.HWND
	Color   gdi.Color
	Log     logrus.FieldLogger
}

// Run 获取设备上下文和画刷并循环填充。填充失败只跳过该帧。
func (f *Filler) Run(ctx context.Context) (Stats, error) {
	dc, err := gdi.AcquireWindow(f.Backend, f.Window)
	if err != nil {
		return Stats{}, fmt.Errorf("无法获取设备上下文: %w", err)
	}
	defer dc.Close()

	brush, err := gdi.NewSolidBrush(f.Backend, f.Color)
	if err != nil {
		return Stats{}, fmt.Errorf("无法创建画刷: %w", err)
	}
	defer brush.Close()

	log := logger(f.Log)
	stats, err := Loop(ctx, func() (bool, error) {
		if FillFrame(dc, brush) {
			return true, nil
		}
		log.WithField("rect", dc.Bounds()).Debug("填充失败，跳过本帧")
		return false, nil
	})
	log.WithFields(logrus.Fields{"frames": stats.Frames, "skipped": stats.Skipped}).Info("填充结束")
	return stats, err
}

// Blitter 全屏拉伸位图
type Blitter struct {
	Backend gdi.Backend
	Window  gdi.HWND
	Log     logrus.FieldLogger
}

// Run 将位图选入兼容上下文并循环拉伸到目标。bitmap 仍归调用方所有。
// 复制失败会结束循环并返回错误。
func (b *Blitter) Run(ctx context.Context, bitmap *gdi.Bitmap) (Stats, error) {
	width, height, err := bitmap.Dimensions()
	if err != nil {
		return Stats{}, fmt.Errorf("无法读取位图尺寸: %w", err)
	}

	dc, err := gdi.AcquireWindow(b.Backend, b.Window)
	if err != nil {
		return Stats{}, fmt.Errorf("无法获取设备上下文: %w", err)
	}
	defer dc.Close()

	mem, err := dc.CreateCompatible()
	if err != nil {
		return Stats{}, fmt.Errorf("无法创建兼容设备上下文: %w", err)
	}
	defer mem.Close()

	prev := mem.SelectObject(bitmap)
	if prev == 0 {
		return Stats{}, fmt.Errorf("无法将位图选入设备上下文")
	}
	defer mem.Restore(prev)

	srcRect := gdi.NewRect(0, 0, width, height)
	log := logger(b.Log)
	stats, err := Loop(ctx, func() (bool, error) {
		if err := StretchFrame(dc, mem, srcRect); err != nil {
			return false, err
		}
		return true, nil
	})
	fields := logrus.Fields{"frames": stats.Frames, "src": srcRect}
	if err != nil {
		log.WithFields(fields).WithError(err).Error("拉伸复制失败")
		return stats, fmt.Errorf("无法复制位图到屏幕: %w", err)
	}
	log.WithFields(fields).Info("拉伸结束")
	return stats, nil
}

func logger(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}
