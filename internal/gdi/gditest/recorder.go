// Package gditest 提供记录调用的假 GDI 后端，供各个包的测试使用。
package gditest

import (
	"fmt"
	"syscall"

	"gdikit/internal/gdi"
)

// 每个新设备上下文默认选中的库存对象
const (
	StockBitmap gdi.HGDIOBJ = 0x1001
	StockBrush  gdi.HGDIOBJ = 0x1002
)

// ERROR_INVALID_HANDLE
const ErrInvalidHandle = syscall.Errno(6)

var _ gdi.Backend = (*Recorder)(nil)

// Call 一次后端调用
type Call struct {
	Name string
	Args []any
}

type dcState struct {
	window   gdi.HWND
	memory   bool
	released bool
	selected map[string]gdi.HGDIOBJ
}

type objState struct {
	kind          string
	width, height int32
	deleted       bool
}

// Recorder 记录每次调用的后端，跟踪句柄状态并检测错误的释放路径
type Recorder struct {
	Calls []Call
	// Violations 非法操作：重复释放、错误的释放路径、使用已释放句柄
	Violations []string

	// Width/Height GetDeviceCaps 返回的分辨率
	Width  int32
	Height int32

	// Fail 中列出的调用名会失败
	Fail map[string]bool
	// Errno 失败的 BitBlt/StretchBlt 返回的错误码
	Errno syscall.Errno

	next    uintptr
	windows map[gdi.HWND]bool
	dcs     map[gdi.HDC]*dcState
	objects map[gdi.HGDIOBJ]*objState
}

// New 创建假后端，分辨率 1920x1080
func New() *Recorder {
	return &Recorder{
		Width:   1920,
		Height:  1080,
		Fail:    map[string]bool{},
		Errno:   ErrInvalidHandle,
		next:    0x2000,
		windows: map[gdi.HWND]bool{gdi.DesktopWindow: true},
		dcs:     map[gdi.HDC]*dcState{},
		objects: map[gdi.HGDIOBJ]*objState{
			StockBitmap: {kind: "bitmap", width: 1, height: 1},
			StockBrush:  {kind: "brush"},
		},
	}
}

// AddWindow 注册一个有效的窗口句柄
func (r *Recorder) AddWindow() gdi.HWND {
	h := gdi.HWND(r.alloc())
	r.windows[h] = true
	return h
}

// Count 指定调用的次数
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find 指定名称的所有调用
func (r *Recorder) Find(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Live 尚未释放的设备上下文和对象数量（不含库存对象）
func (r *Recorder) Live() int {
	n := 0
	for _, dc := range r.dcs {
		if !dc.released {
			n++
		}
	}
	for h, o := range r.objects {
		if h == StockBitmap || h == StockBrush {
			continue
		}
		if !o.deleted {
			n++
		}
	}
	return n
}

// Selected 设备上下文当前选中的指定类型对象
func (r *Recorder) Selected(hdc gdi.HDC, kind string) gdi.HGDIOBJ {
	if dc, ok := r.dcs[hdc]; ok {
		return dc.selected[kind]
	}
	return 0
}

func (r *Recorder) alloc() uintptr {
	r.next += 0x10
	return r.next
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) violate(format string, args ...any) {
	r.Violations = append(r.Violations, fmt.Sprintf(format, args...))
}

func (r *Recorder) liveDC(call string, hdc gdi.HDC) (*dcState, bool) {
	dc, ok := r.dcs[hdc]
	if !ok || dc.released {
		r.violate("%s: 无效或已释放的 hdc %#x", call, hdc)
		return nil, false
	}
	return dc, true
}

func (r *Recorder) liveObject(call string, h gdi.HGDIOBJ) (*objState, bool) {
	o, ok := r.objects[h]
	if !ok || o.deleted {
		r.violate("%s: 无效或已删除的对象 %#x", call, h)
		return nil, false
	}
	return o, true
}

func (r *Recorder) newDC(window gdi.HWND, memory bool) gdi.HDC {
	hdc := gdi.HDC(r.alloc())
	r.dcs[hdc] = &dcState{
		window: window,
		memory: memory,
		selected: map[string]gdi.HGDIOBJ{
			"bitmap": StockBitmap,
			"brush":  StockBrush,
		},
	}
	return hdc
}

func (r *Recorder) GetDC(hwnd gdi.HWND) gdi.HDC {
	r.record("GetDC", hwnd)
	if r.Fail["GetDC"] || !r.windows[hwnd] {
		return 0
	}
	return r.newDC(hwnd, false)
}

func (r *Recorder) ReleaseDC(hwnd gdi.HWND, hdc gdi.HDC) bool {
	r.record("ReleaseDC", hwnd, hdc)
	dc, ok := r.liveDC("ReleaseDC", hdc)
	if !ok {
		return false
	}
	if dc.memory {
		r.violate("ReleaseDC: 内存设备上下文 %#x 必须用 DeleteDC 释放", hdc)
		return false
	}
	if dc.window != hwnd {
		r.violate("ReleaseDC: hdc %#x 属于窗口 %#x, 而不是 %#x", hdc, dc.window, hwnd)
		return false
	}
	dc.released = true
	return true
}

func (r *Recorder) CreateCompatibleDC(hdc gdi.HDC) gdi.HDC {
	r.record("CreateCompatibleDC", hdc)
	if r.Fail["CreateCompatibleDC"] {
		return 0
	}
	if _, ok := r.liveDC("CreateCompatibleDC", hdc); !ok {
		return 0
	}
	return r.newDC(0, true)
}

func (r *Recorder) DeleteDC(hdc gdi.HDC) bool {
	r.record("DeleteDC", hdc)
	dc, ok := r.liveDC("DeleteDC", hdc)
	if !ok {
		return false
	}
	if !dc.memory {
		r.violate("DeleteDC: 窗口设备上下文 %#x 必须用 ReleaseDC 释放", hdc)
		return false
	}
	dc.released = true
	return true
}

func (r *Recorder) CreateSolidBrush(color gdi.COLORREF) gdi.HGDIOBJ {
	r.record("CreateSolidBrush", color)
	if r.Fail["CreateSolidBrush"] {
		return 0
	}
	h := gdi.HGDIOBJ(r.alloc())
	r.objects[h] = &objState{kind: "brush"}
	return h
}

func (r *Recorder) CreateBitmap(width, height int32, planes, bitsPerPixel uint32, bits []byte) gdi.HGDIOBJ {
	r.record("CreateBitmap", width, height, planes, bitsPerPixel, len(bits))
	if r.Fail["CreateBitmap"] {
		return 0
	}
	h := gdi.HGDIOBJ(r.alloc())
	r.objects[h] = &objState{kind: "bitmap", width: width, height: height}
	return h
}

func (r *Recorder) GetObjectBitmap(obj gdi.HGDIOBJ, bm *gdi.BITMAP) bool {
	r.record("GetObject", obj)
	if r.Fail["GetObject"] {
		return false
	}
	o, ok := r.liveObject("GetObject", obj)
	if !ok || o.kind != "bitmap" {
		return false
	}
	*bm = gdi.BITMAP{BmWidth: o.width, BmHeight: o.height, BmPlanes: 1, BmBitsPixel: 32}
	return true
}

func (r *Recorder) DeleteObject(obj gdi.HGDIOBJ) bool {
	r.record("DeleteObject", obj)
	if obj == StockBitmap || obj == StockBrush {
		r.violate("DeleteObject: 不能删除库存对象 %#x", obj)
		return false
	}
	o, ok := r.liveObject("DeleteObject", obj)
	if !ok {
		return false
	}
	o.deleted = true
	return true
}

func (r *Recorder) SelectObject(hdc gdi.HDC, obj gdi.HGDIOBJ) gdi.HGDIOBJ {
	r.record("SelectObject", hdc, obj)
	if r.Fail["SelectObject"] {
		return 0
	}
	dc, ok := r.liveDC("SelectObject", hdc)
	if !ok {
		return 0
	}
	o, ok := r.liveObject("SelectObject", obj)
	if !ok {
		return 0
	}
	prev := dc.selected[o.kind]
	dc.selected[o.kind] = obj
	return prev
}

func (r *Recorder) FillRect(hdc gdi.HDC, rc *gdi.RECT, brush gdi.HGDIOBJ) bool {
	r.record("FillRect", hdc, *rc, brush)
	if r.Fail["FillRect"] {
		return false
	}
	if _, ok := r.liveDC("FillRect", hdc); !ok {
		return false
	}
	_, ok := r.liveObject("FillRect", brush)
	return ok
}

func (r *Recorder) BitBlt(dst gdi.HDC, x, y, cx, cy int32, src gdi.HDC, x1, y1 int32, rop uint32) error {
	r.record("BitBlt", dst, x, y, cx, cy, src, x1, y1, rop)
	return r.blt("BitBlt", dst, src)
}

func (r *Recorder) StretchBlt(dst gdi.HDC, xDst, yDst, wDst, hDst int32, src gdi.HDC, xSrc, ySrc, wSrc, hSrc int32, rop uint32) error {
	r.record("StretchBlt", dst, xDst, yDst, wDst, hDst, src, xSrc, ySrc, wSrc, hSrc, rop)
	return r.blt("StretchBlt", dst, src)
}

func (r *Recorder) blt(call string, dst, src gdi.HDC) error {
	if r.Fail[call] {
		return r.Errno
	}
	if _, ok := r.liveDC(call, dst); !ok {
		return ErrInvalidHandle
	}
	if _, ok := r.liveDC(call, src); !ok {
		return ErrInvalidHandle
	}
	return nil
}

func (r *Recorder) GetDeviceCaps(hdc gdi.HDC, index int32) int32 {
	r.record("GetDeviceCaps", hdc, index)
	if _, ok := r.liveDC("GetDeviceCaps", hdc); !ok {
		return 0
	}
	switch index {
	case gdi.HORZRES:
		return r.Width
	case gdi.VERTRES:
		return r.Height
	}
	return 0
}
