package hotkey

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported 当前平台不支持全局热键
var ErrUnsupported = errors.New("hotkey: 当前平台不支持全局热键")

// Binding 解析后的快捷键
type Binding struct {
	Modifiers []string // 小写的规范名称：ctrl, alt, shift, win
	Key       string   // 小写主键
}

func (b Binding) String() string {
	parts := append([]string{}, b.Modifiers...)
	return strings.Join(append(parts, b.Key), "+")
}

// Parse 解析快捷键字符串，如 "ctrl+alt+q"
func Parse(s string) (Binding, error) {
	var parts []string
	for _, p := range strings.Split(strings.ToLower(s), "+") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return Binding{}, fmt.Errorf("无效的快捷键格式: %q", s)
	}

	b := Binding{Key: parts[len(parts)-1]}
	if !validKey(b.Key) {
		return Binding{}, fmt.Errorf("不支持的主键: %q", b.Key)
	}
	for _, mod := range parts[:len(parts)-1] {
		canon, ok := CanonicalModifier(mod)
		if !ok {
			return Binding{}, fmt.Errorf("不支持的修饰键: %q", mod)
		}
		b.Modifiers = append(b.Modifiers, canon)
	}
	return b, nil
}

// CanonicalModifier 修饰键别名归一化，如 control -> ctrl、cmd -> win
func CanonicalModifier(mod string) (string, bool) {
	switch mod {
	case "ctrl", "control":
		return "ctrl", true
	case "alt", "option":
		return "alt", true
	case "shift":
		return "shift", true
	case "win", "cmd", "command", "super":
		return "win", true
	}
	return "", false
}

// namedKeys 支持的非字母数字主键
var namedKeys = map[string]bool{
	"f1": true, "f2": true, "f3": true, "f4": true, "f5": true, "f6": true,
	"f7": true, "f8": true, "f9": true, "f10": true, "f11": true, "f12": true,
	"space": true, "return": true, "enter": true, "escape": true, "esc": true,
	"tab": true, "delete": true, "del": true,
	"up": true, "down": true, "left": true, "right": true,
}

func validKey(key string) bool {
	if len(key) == 1 {
		c := key[0]
		return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
	}
	return namedKeys[key]
}

// Manager 热键管理器
type Manager struct {
	reg      registration
	callback func()
}

// registration 平台相关的已注册热键
type registration interface {
	keydown() <-chan struct{}
	unregister() error
}

// NewManager 创建热键管理器
func NewManager() *Manager {
	return &Manager{}
}

// Register 注册热键
func (m *Manager) Register(b Binding, callback func()) error {
	reg, err := register(b)
	if err != nil {
		return fmt.Errorf("无法注册热键 %s: %w", b, err)
	}
	m.reg = reg
	m.callback = callback
	return nil
}

// Unregister 注销热键
func (m *Manager) Unregister() error {
	if m.reg == nil {
		return nil
	}
	reg := m.reg
	m.reg = nil
	return reg.unregister()
}

// Listen 监听热键直到 ctx 取消（阻塞）
func (m *Manager) Listen(ctx context.Context) {
	if m.reg == nil {
		return
	}
	keydown := m.reg.keydown()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			if m.callback != nil {
				m.callback()
			}
		}
	}
}

// ListenAsync 异步监听热键
func (m *Manager) ListenAsync(ctx context.Context) {
	go m.Listen(ctx)
}
