//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"
)

type windowsRegistration struct {
	hk   *hotkey.Hotkey
	down chan struct{}
}

func register(b Binding) (registration, error) {
	hk := hotkey.New(parseModifiers(b.Modifiers), parseKey(b.Key))
	if err := hk.Register(); err != nil {
		return nil, err
	}

	r := &windowsRegistration{hk: hk, down: make(chan struct{})}
	go func() {
		defer close(r.down)
		for range hk.Keydown() {
			select {
			case r.down <- struct{}{}:
			default:
			}
		}
	}()
	return r, nil
}

func (r *windowsRegistration) keydown() <-chan struct{} { return r.down }

func (r *windowsRegistration) unregister() error { return r.hk.Unregister() }

// parseModifiers 解析修饰键
func parseModifiers(mods []string) []hotkey.Modifier {
	var result []hotkey.Modifier
	for _, mod := range mods {
		switch mod {
		case "ctrl":
			result = append(result, hotkey.ModCtrl)
		case "alt":
			result = append(result, hotkey.ModAlt)
		case "shift":
			result = append(result, hotkey.ModShift)
		case "win":
			result = append(result, hotkey.ModWin)
		}
	}
	return result
}

// parseKey 解析主键，Parse 已校验过取值
func parseKey(key string) hotkey.Key {
	// 字母和数字键的虚拟键码等于大写 ASCII
	if len(key) == 1 {
		c := key[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		return hotkey.Key(c)
	}

	switch key {
	case "f1":
		return hotkey.KeyF1
	case "f2":
		return hotkey.KeyF2
	case "f3":
		return hotkey.KeyF3
	case "f4":
		return hotkey.KeyF4
	case "f5":
		return hotkey.KeyF5
	case "f6":
		return hotkey.KeyF6
	case "f7":
		return hotkey.KeyF7
	case "f8":
		return hotkey.KeyF8
	case "f9":
		return hotkey.KeyF9
	case "f10":
		return hotkey.KeyF10
	case "f11":
		return hotkey.KeyF11
	case "f12":
		return hotkey.KeyF12
	case "space":
		return hotkey.KeySpace
	case "return", "enter":
		return hotkey.KeyReturn
	case "escape", "esc":
		return hotkey.KeyEscape
	case "tab":
		return hotkey.KeyTab
	case "delete", "del":
		return hotkey.KeyDelete
	case "up":
		return hotkey.KeyUp
	case "down":
		return hotkey.KeyDown
	case "left":
		return hotkey.KeyLeft
	case "right":
		return hotkey.KeyRight
	}

	return hotkey.KeyEscape
}
