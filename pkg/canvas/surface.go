// Package canvas 提供类似 Canvas 2D 的绘图上下文
//
// Context 负责变换栈、路径与描边样式，实际的像素绘制交给 Surface。
// 运行时使用 ImageSurface（基于 ebiten/v2/vector），测试时可替换为记录型实现。
package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface 是 Context 的绘制目标，所有坐标均为设备坐标
type Surface interface {
	// StrokeLine 绘制一条线段
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)
	// FillCircle 绘制实心圆（用于圆形线帽）
	FillCircle(cx, cy, r float32, clr color.Color)
	// Fill 用指定颜色填充整个表面
	Fill(clr color.Color)
	// Size 返回表面尺寸
	Size() (w, h int)
}

// ImageSurface 将 *ebiten.Image 包装为 Surface
type ImageSurface struct {
	dst       *ebiten.Image
	antialias bool
}

// NewImageSurface 创建基于 ebiten 图像的绘制表面
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	return &ImageSurface{dst: dst, antialias: true}
}

// StrokeLine 实现 Surface
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(s.dst, x0, y0, x1, y1, width, clr, s.antialias)
}

// FillCircle 实现 Surface
func (s *ImageSurface) FillCircle(cx, cy, r float32, clr color.Color) {
	vector.FillCircle(s.dst, cx, cy, r, clr, s.antialias)
}

// Fill 实现 Surface
func (s *ImageSurface) Fill(clr color.Color) {
	s.dst.Fill(clr)
}

// Size 实现 Surface
func (s *ImageSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}
