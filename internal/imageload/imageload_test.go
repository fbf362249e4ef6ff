package imageload

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"gdikit/internal/gdi"
	"gdikit/internal/gdi/gditest"
)

func TestBGRASwapsChannels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	w, h, pix := BGRA(img)
	assert.Equal(t, int32(2), w)
	assert.Equal(t, int32(1), h)
	assert.Equal(t, []byte{30, 20, 10, 255, 255, 0, 0, 255}, pix)
}

func TestBGRAOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 8, 7))
	w, h, pix := BGRA(img)
	assert.Equal(t, int32(3), w)
	assert.Equal(t, int32(2), h)
	assert.Len(t, pix, 3*2*BytesPerPixel)
}

func TestSolidBlueBitmap(t *testing.T) {
	rec := gditest.New()

	bm, err := NewBitmap(rec, Solid(4, 4, gdi.RGB(0, 0, 255)))
	require.NoError(t, err)
	defer bm.Close()

	created := rec.Find("CreateBitmap")
	require.Len(t, created, 1)
	assert.Equal(t, []any{int32(4), int32(4), uint32(1), uint32(32), 64}, created[0].Args)

	_, _, pix := BGRA(Solid(1, 1, gdi.RGB(0, 0, 255)))
	assert.Equal(t, []byte{255, 0, 0, 255}, pix)
}

func TestNewBitmapEmptyImage(t *testing.T) {
	rec := gditest.New()
	_, err := NewBitmap(rec, image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, gdi.ErrInvalidBufferSize)
}

func TestFit(t *testing.T) {
	img := Solid(400, 200, gdi.RGB(1, 2, 3))

	assert.Same(t, img, Fit(img, 0, 0))
	assert.Same(t, img, Fit(img, 800, 800))

	got := Fit(img, 100, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 50), got.Bounds())

	got = Fit(img, 1000, 20)
	assert.Equal(t, image.Rect(0, 0, 40, 20), got.Bounds())
}

func TestLoadFormats(t *testing.T) {
	dir := t.TempDir()
	src := Solid(3, 2, gdi.RGB(200, 100, 50))

	pngPath := filepath.Join(dir, "a.png")
	writeImage(t, pngPath, func(f *os.File) error { return png.Encode(f, src) })
	bmpPath := filepath.Join(dir, "a.bmp")
	writeImage(t, bmpPath, func(f *os.File) error { return bmp.Encode(f, src) })

	for _, p := range []string{pngPath, bmpPath} {
		img, err := Load(p)
		require.NoError(t, err, p)
		assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
		r, g, b, _ := img.At(1, 1).RGBA()
		assert.Equal(t, []uint32{200, 100, 50}, []uint32{r >> 8, g >> 8, b >> 8}, p)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func writeImage(t *testing.T, path string, encode func(*os.File) error) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f))
}
