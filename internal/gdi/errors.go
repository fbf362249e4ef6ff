package gdi

import (
	"errors"
	"fmt"
)

var (
	// ErrAcquisitionFailed 后端返回空句柄
	ErrAcquisitionFailed = errors.New("gdi: 获取句柄失败")
	// ErrQueryFailed 读回查询失败
	ErrQueryFailed = errors.New("gdi: 查询失败")
	// ErrInvalidBufferSize 位图像素缓冲区长度与尺寸不符
	ErrInvalidBufferSize = errors.New("gdi: 像素缓冲区长度无效")
	// ErrReleased 句柄已释放
	ErrReleased = errors.New("gdi: 句柄已释放")
	// ErrUnsupportedPlatform 当前系统没有原生 GDI
	ErrUnsupportedPlatform = errors.New("gdi: 当前平台不支持")
)

// OpError 绘制/复制操作失败，附带后端最后的错误码
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return "gdi: " + e.Op + " 失败"
	}
	return fmt.Sprintf("gdi: %s 失败: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// BufferSizeError 像素缓冲区长度不符
type BufferSizeError struct {
	Want int64
	Got  int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("gdi: 像素缓冲区长度无效: 需要 %d 字节, 实际 %d 字节", e.Want, e.Got)
}

func (e *BufferSizeError) Is(target error) bool {
	return target == ErrInvalidBufferSize
}

func acquireError(op string) error {
	return fmt.Errorf("%s: %w", op, ErrAcquisitionFailed)
}
