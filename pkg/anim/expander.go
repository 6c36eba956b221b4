package anim

import "github.com/decker502/halfarc/pkg/canvas"

// Expander 序列控制器
//
// 持有当前节点与遍历方向。当前节点播放完成后移动到下一个节点；
// 到达链端时翻转方向并停留在原节点，下一次点击会反向播放该节点。
type Expander struct {
	root *Node
	curr *Node
	dir  int
}

// NewExpander 创建包含 nodes 个节点的控制器
func NewExpander(nodes int, params Params) *Expander {
	root := NewChain(nodes, params)
	return &Expander{
		root: root,
		curr: root,
		dir:  1,
	}
}

// Root 头节点
func (e *Expander) Root() *Node {
	return e.root
}

// Current 当前正在（或即将）播放的节点
func (e *Expander) Current() *Node {
	return e.curr
}

// Direction 遍历方向，1 或 -1
func (e *Expander) Direction() int {
	return e.dir
}

// Draw 从头节点开始绘制整条链
func (e *Expander) Draw(c *canvas.Context, opts DrawOptions) {
	e.root.Draw(c, opts)
}

// Update 推进当前节点
// 当前节点完成时切换到下一个节点，然后回调 onComplete。
func (e *Expander) Update(onComplete func()) {
	e.curr.Update(func(float64) {
		e.curr = e.curr.Next(e.dir, func() {
			e.dir *= -1
		})
		if onComplete != nil {
			onComplete()
		}
	})
}

// StartUpdating 开始播放当前节点，当前节点正在播放时无效
func (e *Expander) StartUpdating(onStart func()) {
	e.curr.StartUpdating(onStart)
}
