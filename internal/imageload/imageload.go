// Package imageload 读取图片文件并转换为可上传到 GDI 位图的 BGRA 像素
package imageload

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"gdikit/internal/gdi"
)

// BytesPerPixel BGRA 格式每像素字节数
const BytesPerPixel = 4

// BitsPerPixel BGRA 位深
const BitsPerPixel = BytesPerPixel * 8

// Load 读取并解码图片（png/jpeg/gif/bmp/tiff/webp）
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开图片: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("无法解码图片 %s: %w", path, err)
	}
	return img, nil
}

// Fit 按比例缩小到 maxWidth x maxHeight 以内；不放大，<= 0 表示不限制
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return img
	}

	scale := 1.0
	if maxWidth > 0 && w > maxWidth {
		scale = float64(maxWidth) / float64(w)
	}
	if maxHeight > 0 && h > maxHeight {
		if s := float64(maxHeight) / float64(h); s < scale {
			scale = s
		}
	}
	if scale == 1.0 {
		return img
	}

	nw := max(1, int(float64(w)*scale))
	nh := max(1, int(float64(h)*scale))
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// BGRA 转换为自顶向下的 BGRA 像素（1 个平面，32 位）
func BGRA(img image.Image) (width, height int32, pix []byte) {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	// image.RGBA 行间距等于宽度 * 4，可以直接复用
	pix = rgba.Pix
	for i := 0; i+3 < len(pix); i += BytesPerPixel {
		pix[i+0], pix[i+2] = pix[i+2], pix[i+0] // R <-> B
	}
	return int32(b.Dx()), int32(b.Dy()), pix
}

// NewBitmap 用图片创建 GDI 位图
func NewBitmap(backend gdi.Backend, img image.Image) (*gdi.Bitmap, error) {
	w, h, pix := BGRA(img)
	bm, err := gdi.NewBitmap(backend, w, h, 1, BitsPerPixel, pix)
	if err != nil {
		return nil, fmt.Errorf("无法创建位图: %w", err)
	}
	return bm, nil
}

// Solid 生成纯色图片
func Solid(width, height int, c gdi.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += BytesPerPixel {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = 255
	}
	return img
}
