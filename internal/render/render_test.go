package render

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdikit/internal/gdi"
	"gdikit/internal/gdi/gditest"
)

// stopAfter 在第 n 次绘制调用后取消 ctx
type stopAfter struct {
	*gditest.Recorder
	n      int
	cancel context.CancelFunc
}

func (s *stopAfter) tick() {
	s.n--
	if s.n == 0 {
		s.cancel()
	}
}

func (s *stopAfter) FillRect(hdc gdi.HDC, rc *gdi.RECT, brush gdi.HGDIOBJ) bool {
	ok := s.Recorder.FillRect(hdc, rc, brush)
	s.tick()
	return ok
}

func (s *stopAfter) StretchBlt(dst gdi.HDC, xDst, yDst, wDst, hDst int32, src gdi.HDC, xSrc, ySrc, wSrc, hSrc int32, rop uint32) error {
	err := s.Recorder.StretchBlt(dst, xDst, yDst, wDst, hDst, src, xSrc, ySrc, wSrc, hSrc, rop)
	s.tick()
	return err
}

func newStopAfter(n int) (*stopAfter, context.Context) {
	ctx, cancel := context.WithCancel(context.Background())
	return &stopAfter{Recorder: gditest.New(), n: n, cancel: cancel}, ctx
}

func TestLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	stats, err := Loop(ctx, func() (bool, error) {
		n++
		if n == 5 {
			cancel()
		}
		return n%2 == 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, Stats{Frames: 2, Skipped: 3}, stats)
}

func TestLoopStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	stats, err := Loop(context.Background(), func() (bool, error) {
		n++
		if n == 3 {
			return false, boom
		}
		return true, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, uint64(2), stats.Frames)
}

func TestFillerRedrawsFullScreen(t *testing.T) {
	b, ctx := newStopAfter(3)
	log, _ := test.NewNullLogger()

	f := &Filler{Backend: b, Color: gdi.RGB(0, 0, 255), Log: log}
	stats, err := f.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), stats.Frames)

	fills := b.Find("FillRect")
	require.Len(t, fills, 3)
	for _, c := range fills {
		assert.Equal(t, gdi.RECT{Right: 1920, Bottom: 1080}, c.Args[1])
	}
	// 每帧重新查询宽和高
	assert.Equal(t, 6, b.Count("GetDeviceCaps"))
	assert.Empty(t, b.Violations)
	assert.Zero(t, b.Live())
}

func TestFillerSkipsFailedFrames(t *testing.T) {
	b, ctx := newStopAfter(4)
	b.Fail["FillRect"] = true
	log, _ := test.NewNullLogger()

	f := &Filler{Backend: b, Color: gdi.RGB(1, 2, 3), Log: log}
	stats, err := f.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Skipped: 4}, stats)
	assert.Zero(t, b.Live())
}

func TestFillerAcquireFailure(t *testing.T) {
	rec := gditest.New()
	f := &Filler{Backend: rec, Window: gdi.HWND(0x99)}

	_, err := f.Run(context.Background())
	assert.ErrorIs(t, err, gdi.ErrAcquisitionFailed)
	assert.Equal(t, 0, rec.Count("CreateSolidBrush"))
}

func TestFillerBrushFailureReleasesContext(t *testing.T) {
	rec := gditest.New()
	rec.Fail["CreateSolidBrush"] = true
	f := &Filler{Backend: rec}

	_, err := f.Run(context.Background())
	assert.ErrorIs(t, err, gdi.ErrAcquisitionFailed)
	assert.Equal(t, 1, rec.Count("ReleaseDC"))
	assert.Zero(t, rec.Live())
}

func TestBlitterStretchesBitmap(t *testing.T) {
	b, ctx := newStopAfter(2)
	b.Width, b.Height = 800, 600
	log, _ := test.NewNullLogger()

	bm, err := gdi.NewBitmap(b, 4, 4, 1, 32, make([]byte, 64))
	require.NoError(t, err)

	stats, err := (&Blitter{Backend: b, Log: log}).Run(ctx, bm)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stats.Frames)

	blts := b.Find("StretchBlt")
	require.Len(t, blts, 2)
	args := blts[0].Args
	assert.Equal(t, []any{int32(0), int32(0), int32(800), int32(600)}, args[1:5])
	assert.Equal(t, []any{int32(0), int32(0), int32(4), int32(4), uint32(gdi.SrcCopy)}, args[6:])

	// 位图在循环结束后已从兼容上下文中取出，仍归调用方所有
	assert.False(t, bm.Released())
	require.NoError(t, bm.Close())
	assert.Empty(t, b.Violations)
	assert.Zero(t, b.Live())
}

func TestBlitterReportsFailure(t *testing.T) {
	rec := gditest.New()
	rec.Fail["StretchBlt"] = true
	log, hook := test.NewNullLogger()

	bm, err := gdi.NewBitmap(rec, 1, 1, 1, 32, make([]byte, 4))
	require.NoError(t, err)
	defer bm.Close()

	stats, err := (&Blitter{Backend: rec, Log: log}).Run(context.Background(), bm)
	var opErr *gdi.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "StretchBlt", opErr.Op)
	assert.Zero(t, stats.Frames)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "拉伸复制失败", hook.LastEntry().Message)
	assert.Equal(t, 1, rec.Count("DeleteDC"))
	assert.Equal(t, 1, rec.Count("ReleaseDC"))
}

func TestBlitterReleasedBitmap(t *testing.T) {
	rec := gditest.New()
	bm, err := gdi.NewBitmap(rec, 1, 1, 1, 32, make([]byte, 4))
	require.NoError(t, err)
	require.NoError(t, bm.Close())

	_, err = (&Blitter{Backend: rec}).Run(context.Background(), bm)
	assert.ErrorIs(t, err, gdi.ErrReleased)
	assert.Equal(t, 0, rec.Count("GetDC"))
}
