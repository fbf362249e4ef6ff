package gdi_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdikit/internal/gdi"
	"gdikit/internal/gdi/gditest"
)

func TestWithLoggerRecordsCalls(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	rec := gditest.New()
	b := gdi.WithLogger(rec, log)

	dc, err := gdi.Desktop(b)
	require.NoError(t, err)
	brush, err := gdi.NewSolidBrush(b, gdi.RGB(255, 0, 0))
	require.NoError(t, err)
	require.True(t, dc.FillRect(gdi.NewRect(0, 0, 10, 10), brush))
	require.NoError(t, brush.Close())
	require.NoError(t, dc.Close())

	var calls []string
	for _, e := range hook.AllEntries() {
		assert.Equal(t, logrus.DebugLevel, e.Level)
		assert.Equal(t, "gdi", e.Data["component"])
		calls = append(calls, e.Data["call"].(string))
	}
	assert.Equal(t, []string{"GetDC", "CreateSolidBrush", "FillRect", "DeleteObject", "ReleaseDC"}, calls)
	assert.Equal(t, rec.Count("FillRect"), 1)
}

func TestWithLoggerWarnsOnFailure(t *testing.T) {
	log, hook := test.NewNullLogger()
	rec := gditest.New()
	rec.Fail["StretchBlt"] = true
	b := gdi.WithLogger(rec, log)

	dc, err := gdi.Desktop(b)
	require.NoError(t, err)
	defer dc.Close()
	mem, err := dc.CreateCompatible()
	require.NoError(t, err)
	defer mem.Close()

	require.Error(t, dc.StretchBlt(dc.Bounds(), mem, gdi.NewRect(0, 0, 1, 1), gdi.SrcCopy))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "StretchBlt", entry.Data["call"])
	assert.Equal(t, gditest.ErrInvalidHandle, entry.Data[logrus.ErrorKey])
}

func TestWithLoggerNil(t *testing.T) {
	rec := gditest.New()
	assert.Same(t, rec, gdi.WithLogger(rec, nil))
}
