package gdi

import (
	"fmt"
	"math"
	"math/bits"
)

// noCopy 让 go vet 的 copylocks 检查拦截值拷贝
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Selectable 可以被选入设备上下文的对象
type Selectable interface {
	Handle() HGDIOBJ
}

// Object 独占一个 GDI 对象句柄，Close 时调用 DeleteObject。
// 不支持并发使用。
type Object struct {
	noCopy  noCopy
	backend Backend
	handle  HGDIOBJ
}

// Handle 返回原生句柄（只读借用）；已释放时为 0
func (o *Object) Handle() HGDIOBJ {
	if o == nil {
		return 0
	}
	return o.handle
}

// Released 句柄是否已释放或已转移
func (o *Object) Released() bool {
	return o.handle == 0
}

// Detach 转移句柄所有权给调用方，之后 Close 不再删除它
func (o *Object) Detach() HGDIOBJ {
	h := o.handle
	o.handle = 0
	return h
}

// Close 删除对象。重复调用是空操作。
func (o *Object) Close() error {
	if o.handle == 0 {
		return nil
	}
	h := o.handle
	o.handle = 0
	if !o.backend.DeleteObject(h) {
		return &OpError{Op: "DeleteObject"}
	}
	return nil
}

// Brush 纯色画刷，创建后不可变
type Brush struct {
	Object
	color Color
}

// NewSolidBrush 创建纯色画刷
func NewSolidBrush(b Backend, c Color) (*Brush, error) {
	h := b.CreateSolidBrush(c.COLORREF())
	if h == 0 {
		return nil, acquireError("CreateSolidBrush")
	}
	return &Brush{Object: Object{backend: b, handle: h}, color: c}, nil
}

// Handle 原生句柄；nil 或已释放时为 0
func (br *Brush) Handle() HGDIOBJ {
	if br == nil {
		return 0
	}
	return br.handle
}

// Color 画刷颜色
func (br *Brush) Color() Color {
	return br.color
}

// Bitmap 位图对象
type Bitmap struct {
	Object
}

// BitmapSize 计算像素缓冲区应有的字节数：宽 * 高 * ceil(位深/8) * 平面数
func BitmapSize(width, height int32, planes, bitsPerPixel uint32) (int64, error) {
	if width <= 0 || height <= 0 || planes == 0 || bitsPerPixel == 0 {
		return 0, fmt.Errorf("%w: 无效的位图参数 %dx%d planes=%d bpp=%d",
			ErrInvalidBufferSize, width, height, planes, bitsPerPixel)
	}
	bytesPerPixel := (uint64(bitsPerPixel) + 7) / 8
	size := uint64(1)
	for _, f := range []uint64{uint64(width), uint64(height), bytesPerPixel, uint64(planes)} {
		hi, lo := bits.Mul64(size, f)
		if hi != 0 || lo > math.MaxInt64 {
			return 0, fmt.Errorf("%w: 位图过大 %dx%d planes=%d bpp=%d",
				ErrInvalidBufferSize, width, height, planes, bitsPerPixel)
		}
		size = lo
	}
	return int64(size), nil
}

// NewBitmap 用给定像素创建位图。缓冲区长度在调用后端之前校验。
func NewBitmap(b Backend, width, height int32, planes, bitsPerPixel uint32, pixels []byte) (*Bitmap, error) {
	want, err := BitmapSize(width, height, planes, bitsPerPixel)
	if err != nil {
		return nil, err
	}
	if int64(len(pixels)) != want {
		return nil, &BufferSizeError{Want: want, Got: len(pixels)}
	}

	h := b.CreateBitmap(width, height, planes, bitsPerPixel, pixels)
	if h == 0 {
		return nil, acquireError("CreateBitmap")
	}
	return &Bitmap{Object: Object{backend: b, handle: h}}, nil
}

// Handle 原生句柄；nil 或已释放时为 0
func (bm *Bitmap) Handle() HGDIOBJ {
	if bm == nil {
		return 0
	}
	return bm.handle
}

// Dimensions 读回位图宽高
func (bm *Bitmap) Dimensions() (width, height int32, err error) {
	if bm.handle == 0 {
		return 0, 0, ErrReleased
	}
	var info BITMAP
	if !bm.backend.GetObjectBitmap(bm.handle, &info) {
		return 0, 0, fmt.Errorf("GetObject: %w", ErrQueryFailed)
	}
	return info.BmWidth, info.BmHeight, nil
}
