package gdi

// HWND 窗口句柄
type HWND uintptr

// HDC 设备上下文句柄
type HDC uintptr

// HGDIOBJ GDI 对象句柄（画刷、位图等）
type HGDIOBJ uintptr

// DesktopWindow 空窗口句柄，表示整个桌面
const DesktopWindow HWND = 0

// GetDeviceCaps 索引
const (
	HORZRES = 8
	VERTRES = 10
)

// BITMAP GetObject 读回的位图信息
type BITMAP struct {
	BmType       int32
	BmWidth      int32
	BmHeight     int32
	BmWidthBytes int32
	BmPlanes     uint16
	BmBitsPixel  uint16
	BmBits       uintptr
}

// Backend 原生图形接口边界。
//
// 返回句柄的调用以 0 表示失败；返回 error 的调用在失败时给出后端最后的错误码
// (syscall.Errno)。实现不负责初始化或关闭图形子系统。
type Backend interface {
	GetDC(hwnd HWND) HDC
	ReleaseDC(hwnd HWND, hdc HDC) bool
	CreateCompatibleDC(hdc HDC) HDC
	DeleteDC(hdc HDC) bool

	CreateSolidBrush(color COLORREF) HGDIOBJ
	CreateBitmap(width, height int32, planes, bitsPerPixel uint32, bits []byte) HGDIOBJ
	GetObjectBitmap(obj HGDIOBJ, bm *BITMAP) bool
	DeleteObject(obj HGDIOBJ) bool

	SelectObject(hdc HDC, obj HGDIOBJ) HGDIOBJ
	FillRect(hdc HDC, rc *RECT, brush HGDIOBJ) bool
	BitBlt(dst HDC, x, y, cx, cy int32, src HDC, x1, y1 int32, rop uint32) error
	StretchBlt(dst HDC, xDst, yDst, wDst, hDst int32, src HDC, xSrc, ySrc, wSrc, hSrc int32, rop uint32) error
	GetDeviceCaps(hdc HDC, index int32) int32
}
