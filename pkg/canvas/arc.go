package canvas

import (
	"math"

	"github.com/decker502/halfarc/pkg/utils"
)

// arcStepDeg 圆弧采样步长（度）
const arcStepDeg = 1.0

// DrawLineArc 绘制一条旋转后的线段以及对应的圆弧
//
// 坐标系先旋转 rotDeg 度，然后：
//   - 从原点到 (0, r) 描一条线
//   - 以原点为圆心、r 为半径，从 0° 扫到 rotDeg 描一段圆弧
//
// rotDeg 可以为负，此时圆弧反向扫过。rotDeg 为 0 时只绘制线段。
func DrawLineArc(c *Context, r, rotDeg float64) {
	c.Save()
	defer c.Restore()

	c.Rotate(utils.DegToRad(rotDeg))
	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(0, r)
	c.Stroke()

	steps := int(math.Floor(math.Abs(rotDeg) / arcStepDeg))
	if steps == 0 {
		return
	}
	sign := 1.0
	if rotDeg < 0 {
		sign = -1
	}

	c.BeginPath()
	for i := 0; i <= steps; i++ {
		a := utils.DegToRad(sign * float64(i) * arcStepDeg)
		x := r * math.Cos(a)
		y := r * math.Sin(a)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.Stroke()
}
