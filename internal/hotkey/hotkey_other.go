//go:build !windows

package hotkey

func register(Binding) (registration, error) {
	return nil, ErrUnsupported
}
