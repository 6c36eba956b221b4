// Package scenes 包含应用的各个场景
package scenes

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/halfarc/pkg/anim"
	"github.com/decker502/halfarc/pkg/canvas"
	"github.com/decker502/halfarc/pkg/config"
	"github.com/decker502/halfarc/pkg/utils"
)

// PointerFunc 返回本帧是否有新的点击/触摸
type PointerFunc func() (pressed bool, x, y int)

// StageScene 半弧线展开动画的舞台
//
// 每帧先用背景色清屏，再绘制整条节点链。
// 点击（鼠标或触摸）会启动当前节点的动画，计时器由帧间隔推进。
type StageScene struct {
	cfg      *config.StageConfig
	renderer *anim.Renderer
	pointer  PointerFunc
	logger   *log.Logger

	drawOpts anim.DrawOptions
	frames   int // 计时器请求的重绘次数
}

// NewStageScene 根据配置创建舞台场景
// logger 为 nil 时使用默认 logger
func NewStageScene(cfg *config.StageConfig, logger *log.Logger) *StageScene {
	if logger == nil {
		logger = log.Default()
	}
	params := anim.Params{
		Lines: cfg.Chain.Lines,
		Gap:   cfg.Animation.Gap,
		Div:   cfg.Animation.Div,
	}
	expander := anim.NewExpander(cfg.Chain.Nodes, params)
	animator := anim.NewAnimator(cfg.Interval())

	logger.Debug("stage created", "nodes", cfg.Chain.Nodes, "lines", cfg.Chain.Lines, "interval", cfg.Interval())

	return &StageScene{
		cfg:      cfg,
		renderer: anim.NewRenderer(expander, animator, logger),
		pointer:  utils.IsPointerJustPressed,
		logger:   logger,
		drawOpts: anim.DrawOptions{
			Color: cfg.ForeColor(),
			Lines: cfg.Chain.Lines,
		},
	}
}

// SetPointerFunc 替换输入源（测试或自定义输入时使用）
func (s *StageScene) SetPointerFunc(f PointerFunc) {
	s.pointer = f
}

// Renderer 返回场景使用的渲染器
func (s *StageScene) Renderer() *anim.Renderer {
	return s.renderer
}

// Frames 返回计时器请求的重绘次数
func (s *StageScene) Frames() int {
	return s.frames
}

// Update 处理输入并推进计时器
func (s *StageScene) Update(deltaTime float64) {
	if pressed, x, y := s.pointer(); pressed {
		s.logger.Debug("tap", "x", x, "y", y, "node", s.renderer.Expander().Current().Index())
		s.renderer.HandleTap(s.requestFrame)
	}
	s.renderer.Advance(time.Duration(deltaTime * float64(time.Second)))
}

// requestFrame 计时器每个 tick 的重绘请求
// ebiten 每帧都会调用 Draw，这里只做计数
func (s *StageScene) requestFrame() {
	s.frames++
}

// Draw 绘制舞台
func (s *StageScene) Draw(screen *ebiten.Image) {
	s.DrawTo(canvas.NewImageSurface(screen))
}

// DrawTo 在任意 Surface 上绘制舞台，画布尺寸取自 Surface
func (s *StageScene) DrawTo(surface canvas.Surface) {
	c := canvas.NewContext(surface)
	c.Fill(s.cfg.BackColor())

	w, h := surface.Size()
	s.drawOpts.Layout = utils.NodeLayout(float64(w), float64(h), s.cfg.Chain.Nodes, s.cfg.Style.SizeFactor, s.cfg.Style.StrokeFactor)
	s.renderer.Render(c, s.drawOpts)
}
