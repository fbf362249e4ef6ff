package gdi

import "image"

// RECT 原生矩形（left/top/right/bottom）
type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// COLORREF 原生颜色值，布局为 0x00BBGGRR
type COLORREF uint32

// Point 坐标点
type Point struct {
	X int32
	Y int32
}

// Size 尺寸
type Size struct {
	Width  int32
	Height int32
}

// Rect 矩形区域（x/y/宽/高），不做任何裁剪
type Rect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// NewRect 根据 x, y, 宽, 高 创建矩形
func NewRect(x, y, width, height int32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RECT 转换为原生矩形
func (r Rect) RECT() RECT {
	return RECT{
		Left:   r.X,
		Top:    r.Y,
		Right:  r.X + r.Width,
		Bottom: r.Y + r.Height,
	}
}

// Origin 左上角坐标
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size 矩形尺寸
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Image 转换为 image.Rectangle
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X)+int(r.Width), int(r.Y)+int(r.Height))
}

// RectFromRECT 从原生矩形还原
func RectFromRECT(rc RECT) Rect {
	return Rect{
		X:      rc.Left,
		Y:      rc.Top,
		Width:  rc.Right - rc.Left,
		Height: rc.Bottom - rc.Top,
	}
}

// Color RGB 颜色
type Color struct {
	R uint8
	G uint8
	B uint8
}

// RGB 创建颜色
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// COLORREF 打包为原生颜色：R | G<<8 | B<<16
func (c Color) COLORREF() COLORREF {
	return COLORREF(uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16)
}

// ColorFromCOLORREF 解包原生颜色，忽略最高字节
func ColorFromCOLORREF(ref COLORREF) Color {
	return Color{
		R: uint8(ref & 0xFF),
		G: uint8((ref >> 8) & 0xFF),
		B: uint8((ref >> 16) & 0xFF),
	}
}

// RasterOp 光栅操作码（位集合，后端定义的码远多于这里列出的）
type RasterOp uint32

const (
	SrcCopy    RasterOp = 0x00CC0020 // 直接复制源
	SrcPaint   RasterOp = 0x00EE0086 // 源 OR 目标
	SrcAnd     RasterOp = 0x008800C6 // 源 AND 目标
	SrcInvert  RasterOp = 0x00660046 // 源 XOR 目标
	SrcErase   RasterOp = 0x00440328 // 源 AND (NOT 目标)
	NotSrcCopy RasterOp = 0x00330008 // NOT 源
	PatCopy    RasterOp = 0x00F00021 // 复制画刷
	Blackness  RasterOp = 0x00000042
	Whiteness  RasterOp = 0x00FF0062

	// CaptureBlt 包含分层窗口，可与其他操作码组合
	CaptureBlt RasterOp = 0x40000000
)

// Has 是否包含指定位
func (op RasterOp) Has(flag RasterOp) bool {
	return op&flag == flag
}
