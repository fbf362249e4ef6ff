//go:build !windows

package notify

import "github.com/sirupsen/logrus"

// NewNotifier 非 Windows 平台只写日志
func NewNotifier(log logrus.FieldLogger) Notifier {
	return NewLogNotifier(log)
}
