//go:build windows

package gdi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	getDC     = user32.NewProc("GetDC")
	releaseDC = user32.NewProc("ReleaseDC")
	fillRect  = user32.NewProc("FillRect")

	createCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	deleteDC           = gdi32.NewProc("DeleteDC")
	createSolidBrush   = gdi32.NewProc("CreateSolidBrush")
	createBitmap       = gdi32.NewProc("CreateBitmap")
	getObjectW         = gdi32.NewProc("GetObjectW")
	deleteObject       = gdi32.NewProc("DeleteObject")
	selectObject       = gdi32.NewProc("SelectObject")
	bitBlt             = gdi32.NewProc("BitBlt")
	stretchBlt         = gdi32.NewProc("StretchBlt")
	getDeviceCaps      = gdi32.NewProc("GetDeviceCaps")
)

// HGDI_ERROR SelectObject 对区域以外对象的失败返回值
const hgdiError = ^uintptr(0)

type nativeBackend struct{}

// NewNativeBackend 绑定 user32/gdi32
func NewNativeBackend() (Backend, error) {
	for _, dll := range []*windows.LazyDLL{user32, gdi32} {
		if err := dll.Load(); err != nil {
			return nil, fmt.Errorf("无法加载 %s: %w", dll.Name, err)
		}
	}
	return nativeBackend{}, nil
}

func (nativeBackend) GetDC(hwnd HWND) HDC {
	r, _, _ := getDC.Call(uintptr(hwnd))
	return HDC(r)
}

func (nativeBackend) ReleaseDC(hwnd HWND, hdc HDC) bool {
	r, _, _ := releaseDC.Call(uintptr(hwnd), uintptr(hdc))
	return r != 0
}

func (nativeBackend) CreateCompatibleDC(hdc HDC) HDC {
	r, _, _ := createCompatibleDC.Call(uintptr(hdc))
	return HDC(r)
}

func (nativeBackend) DeleteDC(hdc HDC) bool {
	r, _, _ := deleteDC.Call(uintptr(hdc))
	return r != 0
}

func (nativeBackend) CreateSolidBrush(color COLORREF) HGDIOBJ {
	r, _, _ := createSolidBrush.Call(uintptr(color))
	return HGDIOBJ(r)
}

func (nativeBackend) CreateBitmap(width, height int32, planes, bitsPerPixel uint32, bits []byte) HGDIOBJ {
	var p unsafe.Pointer
	if len(bits) > 0 {
		p = unsafe.Pointer(&bits[0])
	}
	r, _, _ := createBitmap.Call(
		uintptr(width), uintptr(height),
		uintptr(planes), uintptr(bitsPerPixel),
		uintptr(p),
	)
	return HGDIOBJ(r)
}

func (nativeBackend) GetObjectBitmap(obj HGDIOBJ, bm *BITMAP) bool {
	r, _, _ := getObjectW.Call(
		uintptr(obj),
		unsafe.Sizeof(*bm),
		uintptr(unsafe.Pointer(bm)),
	)
	return r != 0
}

func (nativeBackend) DeleteObject(obj HGDIOBJ) bool {
	r, _, _ := deleteObject.Call(uintptr(obj))
	return r != 0
}

func (nativeBackend) SelectObject(hdc HDC, obj HGDIOBJ) HGDIOBJ {
	r, _, _ := selectObject.Call(uintptr(hdc), uintptr(obj))
	if r == hgdiError {
		return 0
	}
	return HGDIOBJ(r)
}

func (nativeBackend) FillRect(hdc HDC, rc *RECT, brush HGDIOBJ) bool {
	r, _, _ := fillRect.Call(uintptr(hdc), uintptr(unsafe.Pointer(rc)), uintptr(brush))
	return r != 0
}

func (nativeBackend) BitBlt(dst HDC, x, y, cx, cy int32, src HDC, x1, y1 int32, rop uint32) error {
	r, _, err := bitBlt.Call(
		uintptr(dst), uintptr(x), uintptr(y), uintptr(cx), uintptr(cy),
		uintptr(src), uintptr(x1), uintptr(y1),
		uintptr(rop),
	)
	if r == 0 {
		return lastError(err)
	}
	return nil
}

func (nativeBackend) StretchBlt(dst HDC, xDst, yDst, wDst, hDst int32, src HDC, xSrc, ySrc, wSrc, hSrc int32, rop uint32) error {
	r, _, err := stretchBlt.Call(
		uintptr(dst), uintptr(xDst), uintptr(yDst), uintptr(wDst), uintptr(hDst),
		uintptr(src), uintptr(xSrc), uintptr(ySrc), uintptr(wSrc), uintptr(hSrc),
		uintptr(rop),
	)
	if r == 0 {
		return lastError(err)
	}
	return nil
}

func (nativeBackend) GetDeviceCaps(hdc HDC, index int32) int32 {
	r, _, _ := getDeviceCaps.Call(uintptr(hdc), uintptr(index))
	return int32(r)
}

// lastError GDI 失败时不一定设置错误码，此时给出通用失败
func lastError(err error) error {
	if errno, ok := err.(windows.Errno); ok && errno != 0 {
		return errno
	}
	return windows.ERROR_GEN_FAILURE
}
