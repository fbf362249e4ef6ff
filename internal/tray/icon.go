package tray

import (
	"encoding/binary"

	"gdikit/internal/gdi"
)

const iconSize = 16

// Icon 生成 16x16 的 ICO 图标：圆角色块，颜色与当前绘制颜色一致
func Icon(c gdi.Color) []byte {
	pixelBytes := iconSize * iconSize * 4
	maskBytes := iconSize * 4 // AND 掩码每行 4 字节对齐
	imageSize := 40 + pixelBytes + maskBytes

	buf := make([]byte, 0, 6+16+imageSize)
	le := binary.LittleEndian

	// ICONDIR
	buf = le.AppendUint16(buf, 0) // Reserved
	buf = le.AppendUint16(buf, 1) // Type: 1 = ICO
	buf = le.AppendUint16(buf, 1) // Count

	// ICONDIRENTRY
	buf = append(buf, iconSize, iconSize, 0, 0)
	buf = le.AppendUint16(buf, 1)  // Planes
	buf = le.AppendUint16(buf, 32) // Bits per pixel
	buf = le.AppendUint32(buf, uint32(imageSize))
	buf = le.AppendUint32(buf, 6+16) // Offset

	// BITMAPINFOHEADER，高度为 XOR + AND 两部分
	buf = le.AppendUint32(buf, 40)
	buf = le.AppendUint32(buf, iconSize)
	buf = le.AppendUint32(buf, iconSize*2)
	buf = le.AppendUint16(buf, 1)
	buf = le.AppendUint16(buf, 32)
	buf = append(buf, make([]byte, 24)...)

	// 像素 (BGRA，从下往上)
	for y := iconSize - 1; y >= 0; y-- {
		for x := 0; x < iconSize; x++ {
			if inIcon(x, y) {
				buf = append(buf, c.B, c.G, c.R, 0xFF)
			} else {
				buf = append(buf, 0, 0, 0, 0)
			}
		}
	}

	return append(buf, make([]byte, maskBytes)...)
}

// inIcon 去掉四个角各 3 像素的三角形
func inIcon(x, y int) bool {
	dx := min(x, iconSize-1-x)
	dy := min(y, iconSize-1-y)
	return dx+dy >= 2
}
