//go:build windows

package dpi

import "golang.org/x/sys/windows"

// Enable 依次尝试 Windows 10 1703+、8.1+、Vista+ 的 API
func Enable() Mode {
	user32 := windows.NewLazySystemDLL("user32.dll")

	ctx := user32.NewProc("SetProcessDpiAwarenessContext")
	if err := ctx.Find(); err == nil {
		// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 = -4
		if r, _, _ := ctx.Call(^uintptr(3)); r != 0 {
			return PerMonitorV2
		}
		// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE = -3
		if r, _, _ := ctx.Call(^uintptr(2)); r != 0 {
			return PerMonitor
		}
	}

	shcore := windows.NewLazySystemDLL("shcore.dll")
	awareness := shcore.NewProc("SetProcessDpiAwareness")
	if err := awareness.Find(); err == nil {
		if r, _, _ := awareness.Call(2); r == 0 { // PROCESS_PER_MONITOR_DPI_AWARE, S_OK
			return PerMonitor
		}
		// E_ACCESSDENIED = 已设置过
		if r, _, _ := awareness.Call(1); r == 0 {
			return System
		}
	}

	legacy := user32.NewProc("SetProcessDPIAware")
	if err := legacy.Find(); err == nil {
		if r, _, _ := legacy.Call(); r != 0 {
			return System
		}
	}
	return Unaware
}
