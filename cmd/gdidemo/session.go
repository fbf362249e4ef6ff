package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/sirupsen/logrus"

	"gdikit/internal/config"
	"gdikit/internal/dpi"
	"gdikit/internal/gdi"
	"gdikit/internal/hotkey"
	"gdikit/internal/notify"
	"gdikit/internal/tray"
)

// session 一次绘制运行所需的配置、日志和后端
type session struct {
	cfg      *config.Config
	log      *logrus.Logger
	closeLog func() error
	backend  gdi.Backend
	notifier notify.Notifier
	window   gdi.HWND
}

func newSession(opts *options) (*session, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.noTray {
		cfg.Behavior.ShowTray = false
	}

	log, closeLog, err := cfg.Logger()
	if err != nil {
		return nil, err
	}

	// DPI 感知必须在任何 GDI 调用之前设置
	mode := dpi.Enable()
	log.WithField("mode", mode).Debug("DPI 感知")

	native, err := gdi.NewNativeBackend()
	if err != nil {
		closeLog()
		return nil, err
	}

	s := &session{
		cfg:      cfg,
		log:      log,
		closeLog: closeLog,
		backend:  gdi.WithLogger(native, log),
		notifier: notify.Nop(),
		window:   gdi.HWND(opts.window),
	}
	if cfg.Behavior.ShowNotification {
		s.notifier = notify.NewNotifier(log)
	}
	return s, nil
}

func (s *session) Close() error {
	return s.closeLog()
}

// run 在锁定的 OS 线程上执行 draw，直到热键、托盘、Ctrl+C 或 draw 自身出错
func (s *session) run(title string, color gdi.Color, draw func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	hk := hotkey.NewManager()
	if b, err := hotkey.Parse(s.cfg.GetHotkeyString()); err != nil {
		s.log.WithError(err).Warn("快捷键无效")
	} else if err := hk.Register(b, cancel); err != nil {
		s.log.WithError(err).Warn("注册热键失败")
	} else {
		defer hk.Unregister()
		hk.ListenAsync(ctx)
		s.log.WithField("hotkey", b.String()).Info("按快捷键停止绘制")
	}

	errc := make(chan error, 1)
	go func() {
		// 所有 GDI 句柄只在这个线程上使用
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		errc <- draw(ctx)
	}()

	if !s.cfg.Behavior.ShowTray {
		return s.report(<-errc)
	}

	t := tray.NewTray(title)
	t.SetColor(color)
	t.SetHotkeyText(s.cfg.GetHotkeyString())
	t.SetOnStop(cancel)
	t.SetOnQuit(cancel)

	done := make(chan error, 1)
	go func() {
		err := <-errc
		done <- err
		// 托盘还没启动时 Quit 不会生效
		<-t.Ready()
		t.Quit()
	}()
	t.Run()
	cancel()
	return s.report(<-done)
}

// defaultTrayColor 填充颜色无效时的托盘图标颜色
var defaultTrayColor = gdi.RGB(0, 0, 255)

// trayColor 托盘图标使用配置中的填充颜色
func (s *session) trayColor() gdi.Color {
	c, err := s.cfg.FillColor()
	if err != nil {
		s.log.WithError(err).Warn("填充颜色无效，托盘图标使用默认颜色")
		return defaultTrayColor
	}
	return c
}

// report 绘制失败时通知用户
func (s *session) report(err error) error {
	if err == nil {
		return nil
	}
	s.log.WithError(err).Error("绘制失败")
	if showErr := s.notifier.Show("绘制失败", err.Error()); showErr != nil {
		s.log.WithError(showErr).Warn("通知失败")
	}
	return err
}
