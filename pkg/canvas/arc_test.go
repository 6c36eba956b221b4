package canvas

import (
	"testing"
)

// TestDrawLineArc 测试线段与圆弧的绘制
func TestDrawLineArc(t *testing.T) {
	tests := []struct {
		name      string
		rot       float64
		wantLines int
	}{
		{"无旋转只画线段", 0, 1},
		{"正向 90 度", 90, 1 + 90},
		{"反向 90 度", -90, 1 + 90},
		{"不足 1 度", 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &recordingSurface{}
			c := NewContext(s)
			DrawLineArc(c, 10, tt.rot)
			if len(s.lines) != tt.wantLines {
				t.Errorf("lines: got %d, want %d", len(s.lines), tt.wantLines)
			}
			if c.Depth() != 0 {
				t.Errorf("DrawLineArc left %d saved states", c.Depth())
			}
		})
	}
}

// TestDrawLineArcGeometry 验证旋转后的线段终点
func TestDrawLineArcGeometry(t *testing.T) {
	s := &recordingSurface{}
	c := NewContext(s)
	c.Translate(100, 100)
	DrawLineArc(c, 10, -90)

	// 旋转 -90°：(0, 10) -> (10, 0)
	line := s.lines[0]
	if !near(float64(line.x1), 110) || !near(float64(line.y1), 100) {
		t.Errorf("line end = (%v, %v), want (110, 100)", line.x1, line.y1)
	}

	// 圆弧起点在旋转后的 0°：(10, 0) -> (0, -10)
	arc := s.lines[1]
	if !near(float64(arc.x0), 100) || !near(float64(arc.y0), 90) {
		t.Errorf("arc start = (%v, %v), want (100, 90)", arc.x0, arc.y0)
	}

	// 所有圆弧点到圆心距离都应为半径
	for i, l := range s.lines[1:] {
		dx, dy := float64(l.x1)-100, float64(l.y1)-100
		if d := dx*dx + dy*dy; d < 99.9 || d > 100.1 {
			t.Fatalf("arc point %d off radius: d^2 = %v", i, d)
		}
	}
}
