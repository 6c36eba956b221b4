package anim

import (
	"image/color"
	"testing"
	"time"

	"github.com/decker502/halfarc/pkg/canvas"
	"github.com/decker502/halfarc/pkg/utils"
)

func TestNewChainTopology(t *testing.T) {
	root := NewChain(5, DefaultParams())

	if root.Prev() != nil {
		t.Error("root should have no previous node")
	}
	n, count := root, 0
	for n != nil {
		if n.Index() != count {
			t.Errorf("node %d has index %d", count, n.Index())
		}
		if next := n.Successor(); next != nil && next.Prev() != n {
			t.Errorf("node %d: successor does not link back", count)
		}
		n = n.Successor()
		count++
	}
	if count != 5 {
		t.Errorf("chain length: got %d, want 5", count)
	}
}

func TestNewChainMinimumLength(t *testing.T) {
	root := NewChain(0, DefaultParams())
	if root == nil || root.Successor() != nil {
		t.Error("NewChain(0) should build a single node")
	}
}

// TestNodeNext 测试方向遍历与链端回调
func TestNodeNext(t *testing.T) {
	root := NewChain(3, DefaultParams())
	tail := root.Successor().Successor()

	ends := 0
	onEnd := func() { ends++ }

	if got := root.Next(1, onEnd); got != root.Successor() {
		t.Errorf("root.Next(1) = %d, want 1", got.Index())
	}
	if got := root.Next(-1, onEnd); got != root || ends != 1 {
		t.Errorf("root.Next(-1) = %d ends=%d, want self/1", got.Index(), ends)
	}
	if got := tail.Next(1, onEnd); got != tail || ends != 2 {
		t.Errorf("tail.Next(1) = %d ends=%d, want self/2", got.Index(), ends)
	}
	if got := tail.Next(-1, onEnd); got.Index() != 1 {
		t.Errorf("tail.Next(-1) = %d, want 1", got.Index())
	}
}

// tapAndFinish 模拟一次点击，并推进时间直到计时器停止
func tapAndFinish(t *testing.T, r *Renderer) int {
	t.Helper()
	started := r.Expander().Current().Index()
	frames := 0
	r.HandleTap(func() { frames++ })
	if !r.Animator().IsAnimating() {
		t.Fatalf("tap on node %d did not start the animator", started)
	}
	for i := 0; r.Animator().IsAnimating(); i++ {
		if i >= maxTicks {
			t.Fatalf("node %d never completed", started)
		}
		r.Advance(r.Animator().Interval())
	}
	if frames == 0 {
		t.Errorf("node %d produced no frames", started)
	}
	return started
}

// TestExpanderTraversal 验证遍历顺序：0→4 之后反向 4→0，循环往复
func TestExpanderTraversal(t *testing.T) {
	r := NewRenderer(NewExpander(5, DefaultParams()), NewAnimator(DefaultInterval), nil)

	want := []int{0, 1, 2, 3, 4, 4, 3, 2, 1, 0, 0, 1}
	for i, w := range want {
		got := tapAndFinish(t, r)
		if got != w {
			t.Fatalf("tap %d played node %d, want %d", i, got, w)
		}
		for n := r.Expander().Root(); n != nil; n = n.Successor() {
			if !n.State().IsIdle() {
				t.Fatalf("tap %d: node %d still running after completion", i, n.Index())
			}
		}
	}
}

// TestExpanderScalesAfterForwardPass 正向一轮后所有节点进度为 1
func TestExpanderScalesAfterForwardPass(t *testing.T) {
	r := NewRenderer(NewExpander(5, DefaultParams()), NewAnimator(DefaultInterval), nil)
	for i := 0; i < 5; i++ {
		tapAndFinish(t, r)
	}
	for n := r.Expander().Root(); n != nil; n = n.Successor() {
		s := n.State()
		if s.Scale != 1 || s.Dir != 0 {
			t.Errorf("node %d: scale=%v dir=%d, want 1/0", n.Index(), s.Scale, s.Dir)
		}
	}
	if r.Expander().Direction() != -1 {
		t.Errorf("direction after forward pass: got %d, want -1", r.Expander().Direction())
	}
}

// TestRendererTapWhileRunning 动画进行中的点击被忽略
func TestRendererTapWhileRunning(t *testing.T) {
	r := NewRenderer(NewExpander(5, DefaultParams()), NewAnimator(DefaultInterval), nil)
	r.HandleTap(nil)
	r.Advance(3 * DefaultInterval)

	node := r.Expander().Current()
	scale := node.State().Scale
	r.HandleTap(nil)

	if r.Expander().Current() != node || node.State().Scale != scale || node.State().Dir != 1 {
		t.Error("tap while running changed the animation")
	}
	if r.Advance(time.Duration(0)) != 0 {
		t.Error("zero advance should not tick")
	}
}

// TestExpanderDraw 整条链每个节点都会被绘制
func TestExpanderDraw(t *testing.T) {
	s := &countingSurface{}
	c := canvas.NewContext(s)
	e := NewExpander(5, DefaultParams())
	opts := DrawOptions{
		Layout: utils.NodeLayout(600, 400, 5, 3, 90),
		Color:  color.White,
		Lines:  2,
	}
	e.Draw(c, opts)

	// 空闲状态下每个节点只画 2 条线段
	if s.lines != 10 {
		t.Errorf("lines: got %d, want 10", s.lines)
	}
	if c.Depth() != 0 {
		t.Errorf("Draw left %d saved states", c.Depth())
	}
}

type countingSurface struct {
	lines int
}

func (s *countingSurface) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) { s.lines++ }
func (s *countingSurface) FillCircle(cx, cy, r float32, clr color.Color)              {}
func (s *countingSurface) Fill(clr color.Color)                                       {}
func (s *countingSurface) Size() (int, int)                                           { return 600, 400 }
