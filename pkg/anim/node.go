package anim

import (
	"image/color"

	"github.com/decker502/halfarc/pkg/canvas"
	"github.com/decker502/halfarc/pkg/utils"
)

// DrawOptions 节点绘制参数
type DrawOptions struct {
	Layout utils.Layout
	Color  color.Color
	Lines  int
}

// Node 链上的一个节点
// prev/next 只是对相邻节点的引用，链的拓扑在 NewChain 之后不再改变。
type Node struct {
	index int
	state *State
	prev  *Node
	next  *Node
}

// NewChain 从前往后构建 count 个节点的链，返回头节点
// count < 1 时按 1 处理
func NewChain(count int, params Params) *Node {
	if count < 1 {
		count = 1
	}
	root := &Node{index: 0, state: NewState(params)}
	curr := root
	for i := 1; i < count; i++ {
		n := &Node{index: i, state: NewState(params), prev: curr}
		curr.next = n
		curr = n
	}
	return root
}

// Index 节点序号
func (n *Node) Index() int {
	return n.index
}

// State 节点的动画状态
func (n *Node) State() *State {
	return n.state
}

// Prev 前一个节点，头节点返回 nil
func (n *Node) Prev() *Node {
	return n.prev
}

// Successor 后一个节点，尾节点返回 nil
func (n *Node) Successor() *Node {
	return n.next
}

// Draw 绘制自身，然后递归绘制后续节点
func (n *Node) Draw(c *canvas.Context, opts DrawOptions) {
	drawNode(c, n.index, n.state.Scale, opts)
	if n.next != nil {
		n.next.Draw(c, opts)
	}
}

// Update 推进节点动画一个 tick
func (n *Node) Update(onComplete func(prevScale float64)) {
	n.state.Update(onComplete)
}

// StartUpdating 开始播放节点动画
func (n *Node) StartUpdating(onStart func()) {
	n.state.StartUpdating(onStart)
}

// Next 返回 dir 方向上的相邻节点
// dir == 1 取后继，其他取前驱；到达链端时回调 onEnd 并返回自身。
func (n *Node) Next(dir int, onEnd func()) *Node {
	curr := n.prev
	if dir == 1 {
		curr = n.next
	}
	if curr != nil {
		return curr
	}
	if onEnd != nil {
		onEnd()
	}
	return n
}

// drawNode 在第 i 个节点的位置绘制全部线段与圆弧
func drawNode(c *canvas.Context, i int, scale float64, opts DrawOptions) {
	l := opts.Layout
	c.SetStrokeColor(opts.Color)
	c.SetLineCap(canvas.LineCapRound)
	c.SetLineWidth(l.StrokeWidth)

	c.Save()
	// 节点 0 贴着左边缘
	c.Translate(l.NodeX(i), l.CenterY)
	for j := 0; j < opts.Lines; j++ {
		canvas.DrawLineArc(c, l.Radius, utils.LineRotation(scale, j, opts.Lines))
	}
	c.Restore()
}
