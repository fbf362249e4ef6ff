// Package dpi 在进行任何 GDI 调用之前开启 DPI 感知，
// 否则 GetDeviceCaps 返回的是缩放后的逻辑分辨率。
package dpi

// Mode 成功启用的 DPI 感知方式
type Mode string

const (
	PerMonitorV2 Mode = "per-monitor-v2"
	PerMonitor   Mode = "per-monitor"
	System       Mode = "system"
	Unaware      Mode = "unaware"
)
