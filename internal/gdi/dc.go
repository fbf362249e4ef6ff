package gdi

// Binding 设备上下文的生命周期类型
type Binding int

const (
	// WindowBound 通过 GetDC 获取，必须用 ReleaseDC 还给同一个窗口
	WindowBound Binding = iota + 1
	// MemoryBound 通过 CreateCompatibleDC 创建，必须用 DeleteDC 删除
	MemoryBound
)

func (k Binding) String() string {
	switch k {
	case WindowBound:
		return "window"
	case MemoryBound:
		return "memory"
	}
	return "unknown"
}

// binding 创建时确定的释放路径
type binding interface {
	kind() Binding
	release(b Backend, hdc HDC) bool
}

type windowBound struct {
	hwnd HWND
}

func (windowBound) kind() Binding { return WindowBound }

func (w windowBound) release(b Backend, hdc HDC) bool {
	return b.ReleaseDC(w.hwnd, hdc)
}

type memoryBound struct{}

func (memoryBound) kind() Binding { return MemoryBound }

func (memoryBound) release(b Backend, hdc HDC) bool {
	return b.DeleteDC(hdc)
}

// DeviceContext 独占一个设备上下文句柄。
// 不支持并发使用；Close 恰好调用一次与创建方式对应的释放函数。
type DeviceContext struct {
	noCopy  noCopy
	backend Backend
	hdc     HDC
	binding binding
}

// AcquireWindow 获取窗口的设备上下文；hwnd 为 DesktopWindow 时获取整个桌面
func AcquireWindow(b Backend, hwnd HWND) (*DeviceContext, error) {
	hdc := b.GetDC(hwnd)
	if hdc == 0 {
		return nil, acquireError("GetDC")
	}
	return &DeviceContext{backend: b, hdc: hdc, binding: windowBound{hwnd: hwnd}}, nil
}

// Desktop 获取桌面设备上下文
func Desktop(b Backend) (*DeviceContext, error) {
	return AcquireWindow(b, DesktopWindow)
}

// CreateCompatible 创建与当前上下文兼容的内存设备上下文
func (dc *DeviceContext) CreateCompatible() (*DeviceContext, error) {
	if dc.hdc == 0 {
		return nil, ErrReleased
	}
	hdc := dc.backend.CreateCompatibleDC(dc.hdc)
	if hdc == 0 {
		return nil, acquireError("CreateCompatibleDC")
	}
	return &DeviceContext{backend: dc.backend, hdc: hdc, binding: memoryBound{}}, nil
}

// Handle 原生句柄；已释放时为 0
func (dc *DeviceContext) Handle() HDC {
	return dc.hdc
}

// Binding 生命周期类型
func (dc *DeviceContext) Binding() Binding {
	return dc.binding.kind()
}

// Window 窗口绑定的上下文返回其窗口句柄
func (dc *DeviceContext) Window() (HWND, bool) {
	w, ok := dc.binding.(windowBound)
	return w.hwnd, ok
}

// Released 是否已释放
func (dc *DeviceContext) Released() bool {
	return dc.hdc == 0
}

// SelectObject 将对象选入上下文，返回之前选中的对象句柄。
// 对象仍归调用方所有；返回的句柄不属于调用方，不要删除。
// 失败时返回 0。
func (dc *DeviceContext) SelectObject(obj Selectable) HGDIOBJ {
	if dc.hdc == 0 || obj == nil {
		return 0
	}
	h := obj.Handle()
	if h == 0 {
		return 0
	}
	return dc.backend.SelectObject(dc.hdc, h)
}

// Restore 重新选入之前 SelectObject 返回的句柄
func (dc *DeviceContext) Restore(prev HGDIOBJ) bool {
	if dc.hdc == 0 || prev == 0 {
		return false
	}
	return dc.backend.SelectObject(dc.hdc, prev) != 0
}

// FillRect 用画刷填充矩形，返回后端是否成功
func (dc *DeviceContext) FillRect(r Rect, brush *Brush) bool {
	if dc.hdc == 0 || brush == nil || brush.handle == 0 {
		return false
	}
	rc := r.RECT()
	return dc.backend.FillRect(dc.hdc, &rc, brush.handle)
}

// BitBlt 从 src 复制一块像素到当前上下文
func (dc *DeviceContext) BitBlt(dst Point, size Size, src *DeviceContext, srcOrigin Point, rop RasterOp) error {
	if dc.hdc == 0 || src == nil || src.hdc == 0 {
		return &OpError{Op: "BitBlt", Err: ErrReleased}
	}
	err := dc.backend.BitBlt(dc.hdc, dst.X, dst.Y, size.Width, size.Height,
		src.hdc, srcOrigin.X, srcOrigin.Y, uint32(rop))
	if err != nil {
		return &OpError{Op: "BitBlt", Err: err}
	}
	return nil
}

// StretchBlt 从 src 的 srcRect 复制到当前上下文的 dst，尺寸不同时由后端缩放
func (dc *DeviceContext) StretchBlt(dst Rect, src *DeviceContext, srcRect Rect, rop RasterOp) error {
	if dc.hdc == 0 || src == nil || src.hdc == 0 {
		return &OpError{Op: "StretchBlt", Err: ErrReleased}
	}
	err := dc.backend.StretchBlt(dc.hdc, dst.X, dst.Y, dst.Width, dst.Height,
		src.hdc, srcRect.X, srcRect.Y, srcRect.Width, srcRect.Height, uint32(rop))
	if err != nil {
		return &OpError{Op: "StretchBlt", Err: err}
	}
	return nil
}

// PhysicalWidth 设备水平分辨率（像素）
func (dc *DeviceContext) PhysicalWidth() int32 {
	if dc.hdc == 0 {
		return 0
	}
	return dc.backend.GetDeviceCaps(dc.hdc, HORZRES)
}

// PhysicalHeight 设备垂直分辨率（像素）
func (dc *DeviceContext) PhysicalHeight() int32 {
	if dc.hdc == 0 {
		return 0
	}
	return dc.backend.GetDeviceCaps(dc.hdc, VERTRES)
}

// Bounds 以原点为左上角、覆盖整个设备的矩形
func (dc *DeviceContext) Bounds() Rect {
	return Rect{Width: dc.PhysicalWidth(), Height: dc.PhysicalHeight()}
}

// Close 释放设备上下文。重复调用是空操作。
func (dc *DeviceContext) Close() error {
	if dc.hdc == 0 {
		return nil
	}
	hdc := dc.hdc
	dc.hdc = 0
	if !dc.binding.release(dc.backend, hdc) {
		op := "DeleteDC"
		if dc.binding.kind() == WindowBound {
			op = "ReleaseDC"
		}
		return &OpError{Op: op}
	}
	return nil
}
