//go:build !windows

package dpi

// Enable 非 Windows 平台无需处理
func Enable() Mode {
	return Unaware
}
