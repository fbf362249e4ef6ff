//go:build windows

package notify

import (
	"github.com/go-toast/toast"
	"github.com/sirupsen/logrus"
)

// WindowsNotifier Windows通知实现
type WindowsNotifier struct {
	appID    string
	fallback Notifier
}

// NewNotifier 创建通知器，推送失败时写日志
func NewNotifier(log logrus.FieldLogger) Notifier {
	return &WindowsNotifier{
		appID:    "gdikit",
		fallback: NewLogNotifier(log),
	}
}

// Show 显示通知（异步，不阻塞主流程）
func (n *WindowsNotifier) Show(title, message string) error {
	go func() {
		notification := toast.Notification{
			AppID:   n.appID,
			Title:   title,
			Message: message,
		}
		if err := notification.Push(); err != nil {
			n.fallback.Show(title, message)
		}
	}()
	return nil
}
