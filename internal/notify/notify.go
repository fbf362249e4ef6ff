package notify

import "github.com/sirupsen/logrus"

// Notifier 通知接口
type Notifier interface {
	Show(title, message string) error
}

// logNotifier 只写日志的通知器
type logNotifier struct {
	log logrus.FieldLogger
}

// NewLogNotifier 创建只写日志的通知器
func NewLogNotifier(log logrus.FieldLogger) Notifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &logNotifier{log: log}
}

func (n *logNotifier) Show(title, message string) error {
	n.log.WithField("title", title).Warn(message)
	return nil
}

// nopNotifier 关闭通知时使用
type nopNotifier struct{}

// Nop 不做任何事的通知器
func Nop() Notifier { return nopNotifier{} }

func (nopNotifier) Show(string, string) error { return nil }
