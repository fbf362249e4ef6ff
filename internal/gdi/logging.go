package gdi

import (
	"github.com/sirupsen/logrus"
)

// loggingBackend 记录每次后端调用
type loggingBackend struct {
	next Backend
	log  logrus.FieldLogger
}

// WithLogger 包装 Backend，在 Debug 级别记录每次调用，失败时记录 Warn
func WithLogger(b Backend, log logrus.FieldLogger) Backend {
	if log == nil {
		return b
	}
	return &loggingBackend{next: b, log: log.WithField("component", "gdi")}
}

func (l *loggingBackend) trace(call string, ok bool, fields logrus.Fields) {
	entry := l.log.WithFields(fields).WithField("call", call)
	if ok {
		entry.Debug("gdi 调用")
		return
	}
	entry.Warn("gdi 调用失败")
}

func (l *loggingBackend) GetDC(hwnd HWND) HDC {
	hdc := l.next.GetDC(hwnd)
	l.trace("GetDC", hdc != 0, logrus.Fields{"hwnd": hwnd, "hdc": hdc})
	return hdc
}

func (l *loggingBackend) ReleaseDC(hwnd HWND, hdc HDC) bool {
	ok := l.next.ReleaseDC(hwnd, hdc)
	l.trace("ReleaseDC", ok, logrus.Fields{"hwnd": hwnd, "hdc": hdc})
	return ok
}

func (l *loggingBackend) CreateCompatibleDC(hdc HDC) HDC {
	mem := l.next.CreateCompatibleDC(hdc)
	l.trace("CreateCompatibleDC", mem != 0, logrus.Fields{"hdc": hdc, "result": mem})
	return mem
}

func (l *loggingBackend) DeleteDC(hdc HDC) bool {
	ok := l.next.DeleteDC(hdc)
	l.trace("DeleteDC", ok, logrus.Fields{"hdc": hdc})
	return ok
}

func (l *loggingBackend) CreateSolidBrush(color COLORREF) HGDIOBJ {
	h := l.next.CreateSolidBrush(color)
	l.trace("CreateSolidBrush", h != 0, logrus.Fields{"color": color, "result": h})
	return h
}

func (l *loggingBackend) CreateBitmap(width, height int32, planes, bitsPerPixel uint32, bits []byte) HGDIOBJ {
	h := l.next.CreateBitmap(width, height, planes, bitsPerPixel, bits)
	l.trace("CreateBitmap", h != 0, logrus.Fields{
		"width": width, "height": height, "planes": planes, "bpp": bitsPerPixel, "result": h,
	})
	return h
}

func (l *loggingBackend) GetObjectBitmap(obj HGDIOBJ, bm *BITMAP) bool {
	ok := l.next.GetObjectBitmap(obj, bm)
	l.trace("GetObject", ok, logrus.Fields{"obj": obj})
	return ok
}

func (l *loggingBackend) DeleteObject(obj HGDIOBJ) bool {
	ok := l.next.DeleteObject(obj)
	l.trace("DeleteObject", ok, logrus.Fields{"obj": obj})
	return ok
}

func (l *loggingBackend) SelectObject(hdc HDC, obj HGDIOBJ) HGDIOBJ {
	prev := l.next.SelectObject(hdc, obj)
	l.trace("SelectObject", prev != 0, logrus.Fields{"hdc": hdc, "obj": obj, "prev": prev})
	return prev
}

func (l *loggingBackend) FillRect(hdc HDC, rc *RECT, brush HGDIOBJ) bool {
	ok := l.next.FillRect(hdc, rc, brush)
	l.trace("FillRect", ok, logrus.Fields{"hdc": hdc, "rect": *rc, "brush": brush})
	return ok
}

func (l *loggingBackend) BitBlt(dst HDC, x, y, cx, cy int32, src HDC, x1, y1 int32, rop uint32) error {
	err := l.next.BitBlt(dst, x, y, cx, cy, src, x1, y1, rop)
	fields := logrus.Fields{"dst": dst, "src": src, "rop": rop}
	if err != nil {
		fields[logrus.ErrorKey] = err
	}
	l.trace("BitBlt", err == nil, fields)
	return err
}

func (l *loggingBackend) StretchBlt(dst HDC, xDst, yDst, wDst, hDst int32, src HDC, xSrc, ySrc, wSrc, hSrc int32, rop uint32) error {
	err := l.next.StretchBlt(dst, xDst, yDst, wDst, hDst, src, xSrc, ySrc, wSrc, hSrc, rop)
	fields := logrus.Fields{
		"dst":     dst,
		"dstRect": Rect{X: xDst, Y: yDst, Width: wDst, Height: hDst},
		"src":     src,
		"srcRect": Rect{X: xSrc, Y: ySrc, Width: wSrc, Height: hSrc},
		"rop":     rop,
	}
	if err != nil {
		fields[logrus.ErrorKey] = err
	}
	l.trace("StretchBlt", err == nil, fields)
	return err
}

func (l *loggingBackend) GetDeviceCaps(hdc HDC, index int32) int32 {
	v := l.next.GetDeviceCaps(hdc, index)
	l.trace("GetDeviceCaps", true, logrus.Fields{"hdc": hdc, "index": index, "value": v})
	return v
}
