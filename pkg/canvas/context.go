package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// LineCap 线帽样式
type LineCap int

const (
	// LineCapButt 平头（默认）
	LineCapButt LineCap = iota
	// LineCapRound 圆头
	LineCapRound
)

type point struct {
	x, y float64
}

// drawState 是 Save/Restore 保存的绘图状态
type drawState struct {
	geoM        ebiten.GeoM
	strokeColor color.Color
	lineWidth   float64
	lineCap     LineCap
}

// Context 是一个最小化的 Canvas 2D 风格上下文
//
// 变换语义与 Canvas 一致：后调用的 Translate/Rotate 先作用于路径点。
// 路径点在 MoveTo/LineTo 时即按当前变换转换为设备坐标。
type Context struct {
	surface Surface
	state   drawState
	stack   []drawState

	// subpaths 当前路径，每个子路径是一串已变换的点
	subpaths [][]point
}

// NewContext 创建绘图上下文
func NewContext(surface Surface) *Context {
	return &Context{
		surface: surface,
		state: drawState{
			strokeColor: color.Black,
			lineWidth:   1,
			lineCap:     LineCapButt,
		},
	}
}

// Save 压入当前绘图状态
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore 弹出最近一次 Save 的状态，栈为空时不做任何事
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Depth 返回 Save 栈深度
func (c *Context) Depth() int {
	return len(c.stack)
}

// Translate 平移坐标系
func (c *Context) Translate(x, y float64) {
	var op ebiten.GeoM
	op.Translate(x, y)
	c.prepend(op)
}

// Rotate 旋转坐标系（弧度，顺时针为正，与屏幕坐标一致）
func (c *Context) Rotate(theta float64) {
	var op ebiten.GeoM
	op.Rotate(theta)
	c.prepend(op)
}

// prepend 让 op 先于当前变换作用于点：M = M * op
func (c *Context) prepend(op ebiten.GeoM) {
	op.Concat(c.state.geoM)
	c.state.geoM = op
}

// Transform 将用户坐标转换为设备坐标
func (c *Context) Transform(x, y float64) (float64, float64) {
	return c.state.geoM.Apply(x, y)
}

// SetStrokeColor 设置描边颜色
func (c *Context) SetStrokeColor(clr color.Color) {
	c.state.strokeColor = clr
}

// SetLineWidth 设置线宽
func (c *Context) SetLineWidth(w float64) {
	c.state.lineWidth = w
}

// SetLineCap 设置线帽
func (c *Context) SetLineCap(lc LineCap) {
	c.state.lineCap = lc
}

// BeginPath 清空当前路径
func (c *Context) BeginPath() {
	c.subpaths = c.subpaths[:0]
}

// MoveTo 开始新的子路径
func (c *Context) MoveTo(x, y float64) {
	dx, dy := c.Transform(x, y)
	c.subpaths = append(c.subpaths, []point{{dx, dy}})
}

// LineTo 向当前子路径追加一个点；没有子路径时等同于 MoveTo
func (c *Context) LineTo(x, y float64) {
	if len(c.subpaths) == 0 {
		c.MoveTo(x, y)
		return
	}
	dx, dy := c.Transform(x, y)
	last := len(c.subpaths) - 1
	c.subpaths[last] = append(c.subpaths[last], point{dx, dy})
}

// Stroke 以当前样式描边路径
// 路径保留，可重复描边，直到下一次 BeginPath
func (c *Context) Stroke() {
	w := float32(c.state.lineWidth)
	clr := c.state.strokeColor
	for _, sp := range c.subpaths {
		for i := 1; i < len(sp); i++ {
			c.surface.StrokeLine(float32(sp[i-1].x), float32(sp[i-1].y), float32(sp[i].x), float32(sp[i].y), w, clr)
		}
		if c.state.lineCap == LineCapRound && len(sp) > 1 {
			// 圆头线帽同时覆盖折线拐点，弧线由短线段拼成时不会出现缝隙
			for _, p := range sp {
				c.surface.FillCircle(float32(p.x), float32(p.y), w/2, clr)
			}
		}
	}
}

// Fill 用指定颜色清空整个画布（不受变换影响）
func (c *Context) Fill(clr color.Color) {
	c.surface.Fill(clr)
}
