package utils

import "math"

// Scale Helpers (进度/几何辅助函数)
//
// 半弧线展开动画的全部几何计算都集中在这里，均为纯函数，便于测试。
// scale 表示单个节点的动画进度，正常范围 [0, 1]。

// MaxScale 返回第 i 段（共 n 段）相对于整体进度的剩余进度
// 公式：max(0, scale - i/n)
func MaxScale(scale float64, i, n int) float64 {
	return math.Max(0, scale-float64(i)/float64(n))
}

// DivideScale 返回第 i 段的进度分量，限制在 [0, 1/n]
// 公式：min(1/n, MaxScale(scale, i, n))
func DivideScale(scale float64, i, n int) float64 {
	return math.Min(1/float64(n), MaxScale(scale, i, n))
}

// SegmentScale 将第 i 段的进度分量归一化到 [0, 1]
func SegmentScale(scale float64, i, n int) float64 {
	return float64(n) * DivideScale(scale, i, n)
}

// ScaleFactor 计算镜像插值的分段系数
// scale 越过 div 之后返回 1，负数进度返回负值
func ScaleFactor(scale, div float64) float64 {
	return math.Floor(scale / div)
}

// MirrorValue 在 1/a 与 1/b 之间做镜像插值
// 公式：(1-k)/a + k/b，其中 k = ScaleFactor(scale, div) 限制在 [0, 1]
// 进度因浮点误差略小于 0 或 div 很小时，步长仍保持为正
func MirrorValue(scale, a, b, div float64) float64 {
	k := math.Min(1, math.Max(0, ScaleFactor(scale, div)))
	return (1-k)/a + k/b
}

// UpdateValue 计算每个 tick 的进度增量
// dir 为 -1/0/1，gap 为基础步长
func UpdateValue(scale float64, dir int, a, b, gap, div float64) float64 {
	return MirrorValue(scale, a, b, div) * float64(dir) * gap
}

// LineRotation 返回第 j 条线（共 n 条）的旋转角度（单位：度）
//
// 第一条线随自身进度从 0° 转到 -90°；
// 之后的线先随第一段进度整体转 -180°，再按 (1-2j) 的方向回转 90°。
func LineRotation(scale float64, j, n int) float64 {
	sf := float64(1 - 2*j)
	first := SegmentScale(scale, 0, n)
	own := SegmentScale(scale, j, n)
	return -180*float64(j)*first - 90*own*sf
}

// DegToRad 角度转弧度
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Layout 描述一排节点在画布上的布局
type Layout struct {
	// Gap 相邻节点的水平间距
	Gap float64
	// Radius 线段长度及圆弧半径
	Radius float64
	// StrokeWidth 线宽
	StrokeWidth float64
	// CenterY 节点所在的水平中线
	CenterY float64
}

// NodeLayout 根据画布尺寸计算节点布局
//
//	gap = w / (nodes + 1)
//	radius = gap / sizeFactor
//	strokeWidth = min(w, h) / strokeFactor
func NodeLayout(w, h float64, nodes int, sizeFactor, strokeFactor float64) Layout {
	gap := w / float64(nodes+1)
	return Layout{
		Gap:         gap,
		Radius:      gap / sizeFactor,
		StrokeWidth: math.Min(w, h) / strokeFactor,
		CenterY:     h / 2,
	}
}

// NodeX 返回第 i 个节点的水平位置：gap * i
func (l Layout) NodeX(i int) float64 {
	return l.Gap * float64(i)
}
