package anim

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/decker502/halfarc/pkg/canvas"
)

// Renderer 把点击输入、计时器与序列控制器连接起来
type Renderer struct {
	expander *Expander
	animator *Animator
	logger   *log.Logger
}

// NewRenderer 创建渲染器
// logger 为 nil 时使用 charmbracelet/log 的默认 logger
func NewRenderer(expander *Expander, animator *Animator, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{
		expander: expander,
		animator: animator,
		logger:   logger,
	}
}

// Expander 返回序列控制器
func (r *Renderer) Expander() *Expander {
	return r.expander
}

// Animator 返回计时器
func (r *Renderer) Animator() *Animator {
	return r.animator
}

// Render 绘制整条链
func (r *Renderer) Render(c *canvas.Context, opts DrawOptions) {
	r.expander.Draw(c, opts)
}

// HandleTap 处理一次点击
//
// 当前节点空闲时开始播放并启动计时器；每个 tick 回调 onFrame 请求重绘，
// 节点播放完成后停止计时器。动画进行中的点击会被忽略。
func (r *Renderer) HandleTap(onFrame func()) {
	r.expander.StartUpdating(func() {
		node := r.expander.Current()
		r.logger.Debug("start node", "index", node.Index(), "dir", node.State().Dir)
		r.animator.Start(func() {
			if onFrame != nil {
				onFrame()
			}
			r.expander.Update(func() {
				r.animator.Stop()
				r.logger.Debug("node complete", "index", node.Index(),
					"next", r.expander.Current().Index(), "direction", r.expander.Direction())
				if onFrame != nil {
					onFrame()
				}
			})
		})
	})
}

// Advance 推进计时器
func (r *Renderer) Advance(dt time.Duration) int {
	return r.animator.Advance(dt)
}
