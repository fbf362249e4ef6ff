package gdi_test

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdikit/internal/gdi"
)

func TestRectToRECT(t *testing.T) {
	cases := []gdi.Rect{
		{X: 0, Y: 0, Width: 100, Height: 50},
		{X: -10, Y: 20, Width: 5, Height: 0},
		{X: 7, Y: -3, Width: -4, Height: -9},
		{X: 1 << 20, Y: 1 << 19, Width: 1920, Height: 1080},
	}
	for _, r := range cases {
		rc := r.RECT()
		assert.Equal(t, r.X, rc.Left)
		assert.Equal(t, r.Y, rc.Top)
		assert.Equal(t, r.X+r.Width, rc.Right)
		assert.Equal(t, r.Y+r.Height, rc.Bottom)
		assert.Equal(t, r, gdi.RectFromRECT(rc))
	}
}

func TestRectHelpers(t *testing.T) {
	r := gdi.NewRect(3, 4, 10, 20)
	assert.Equal(t, gdi.Point{X: 3, Y: 4}, r.Origin())
	assert.Equal(t, gdi.Size{Width: 10, Height: 20}, r.Size())
	assert.Equal(t, image.Rect(3, 4, 13, 24), r.Image())

	// 右下角超出 int32 时不回绕
	big := gdi.NewRect(math.MaxInt32, math.MaxInt32, 10, 20)
	edge := math.MaxInt32
	assert.Equal(t, image.Rect(edge, edge, edge+10, edge+20), big.Image())
}

func TestColorRoundTrip(t *testing.T) {
	for v := uint32(0); v < 1<<24; v++ {
		c := gdi.RGB(uint8(v), uint8(v>>8), uint8(v>>16))
		if got := gdi.ColorFromCOLORREF(c.COLORREF()); got != c {
			t.Fatalf("round trip %v -> %#x -> %v", c, c.COLORREF(), got)
		}
	}
}

func TestColorPacking(t *testing.T) {
	require.Equal(t, gdi.COLORREF(0x000000FF), gdi.RGB(255, 0, 0).COLORREF())
	require.Equal(t, gdi.COLORREF(0x0000FF00), gdi.RGB(0, 255, 0).COLORREF())
	require.Equal(t, gdi.COLORREF(0x00FF0000), gdi.RGB(0, 0, 255).COLORREF())
	// 最高字节被忽略
	assert.Equal(t, gdi.RGB(1, 2, 3), gdi.ColorFromCOLORREF(0xFF030201))
}

func TestRasterOpFlags(t *testing.T) {
	assert.Equal(t, gdi.RasterOp(0x00CC0020), gdi.SrcCopy)

	op := gdi.SrcCopy | gdi.CaptureBlt
	assert.True(t, op.Has(gdi.SrcCopy))
	assert.True(t, op.Has(gdi.CaptureBlt))
	assert.False(t, gdi.SrcCopy.Has(gdi.CaptureBlt))

	// 未命名的码原样保留
	custom := gdi.RasterOp(0x00BB0226)
	assert.Equal(t, uint32(0x00BB0226), uint32(custom))
}
