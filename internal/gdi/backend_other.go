//go:build !windows

package gdi

// NewNativeBackend 非 Windows 平台没有 GDI
func NewNativeBackend() (Backend, error) {
	return nil, ErrUnsupportedPlatform
}
