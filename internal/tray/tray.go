package tray

import (
	"github.com/getlantern/systray"

	"gdikit/internal/gdi"
)

// Tray 系统托盘
type Tray struct {
	title      string
	color      gdi.Color
	hotkeyText string
	onStop     func()
	onQuit     func()
	ready      chan struct{}
}

// NewTray 创建系统托盘
func NewTray(title string) *Tray {
	return &Tray{
		title: title,
		color: gdi.RGB(0, 0, 255),
		ready: make(chan struct{}),
	}
}

// SetColor 设置图标颜色
func (t *Tray) SetColor(c gdi.Color) {
	t.color = c
}

// SetHotkeyText 设置快捷键显示文本
func (t *Tray) SetHotkeyText(text string) {
	t.hotkeyText = text
}

// SetOnStop 设置停止绘制回调
func (t *Tray) SetOnStop(fn func()) {
	t.onStop = fn
}

// SetOnQuit 设置退出回调
func (t *Tray) SetOnQuit(fn func()) {
	t.onQuit = fn
}

// Run 运行系统托盘（阻塞，需在主线程调用）
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Ready 托盘菜单创建完成后关闭
func (t *Tray) Ready() <-chan struct{} {
	return t.ready
}

// Quit 关闭托盘，Run 随后返回
func (t *Tray) Quit() {
	systray.Quit()
}

func (t *Tray) stopLabel() string {
	if t.hotkeyText == "" {
		return "停止绘制"
	}
	return "停止绘制 (" + t.hotkeyText + ")"
}

func (t *Tray) onReady() {
	systray.SetIcon(Icon(t.color))
	systray.SetTitle(t.title)
	systray.SetTooltip(t.title + " - GDI 绘制演示")

	mStop := systray.AddMenuItem(t.stopLabel(), "停止绘制循环")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("退出", "退出程序")
	close(t.ready)

	go func() {
		for {
			select {
			case <-mStop.ClickedCh:
				if t.onStop != nil {
					t.onStop()
				}
			case <-mQuit.ClickedCh:
				if t.onQuit != nil {
					t.onQuit()
				}
				systray.Quit()
				return
			}
		}
	}()
}

func (t *Tray) onExit() {
	if t.onStop != nil {
		t.onStop()
	}
}
