// Package anim 实现半弧线展开动画的核心逻辑
//
// 结构自底向上：
//   - State：单个节点的进度、方向与检查点
//   - Animator：固定间隔的重复计时器
//   - Node：双向链表节点，每个节点拥有一个 State
//   - Expander：维护当前节点与遍历方向的序列控制器
//   - Renderer：把点击输入、计时器与 Expander 串起来
//
// 所有状态变更都发生在计时器回调中，单线程执行，无需加锁。
package anim

import (
	"math"

	"github.com/decker502/halfarc/pkg/utils"
)

// Params 动画参数
type Params struct {
	// Lines 每个节点的线段数
	Lines int
	// Gap 每个 tick 的基础步长
	Gap float64
	// Div 镜像插值的分界点
	Div float64
}

// DefaultParams 返回默认动画参数
func DefaultParams() Params {
	return Params{
		Lines: 2,
		Gap:   0.05,
		Div:   0.51,
	}
}

// State 单个节点的动画状态
//
// Dir == 0 表示空闲，非 0 表示正在播放。
// PrevScale 是上一次完成时的进度（0 或 1），也是下一次播放的起点。
type State struct {
	Scale     float64
	Dir       int
	PrevScale float64

	params Params
}

// NewState 创建空闲状态
func NewState(params Params) *State {
	return &State{params: params}
}

// IsIdle 是否空闲
func (s *State) IsIdle() bool {
	return s.Dir == 0
}

// Update 推进一个 tick
//
// 进度越过检查点 1 个单位后吸附到 PrevScale+Dir，方向清零，并回调 onComplete。
func (s *State) Update(onComplete func(prevScale float64)) {
	s.Scale += utils.UpdateValue(s.Scale, s.Dir, float64(s.params.Lines), 1, s.params.Gap, s.params.Div)
	if math.Abs(s.Scale-s.PrevScale) > 1 {
		s.Scale = s.PrevScale + float64(s.Dir)
		s.Dir = 0
		s.PrevScale = s.Scale
		if onComplete != nil {
			onComplete(s.PrevScale)
		}
	}
}

// StartUpdating 从空闲状态开始播放
// 方向由检查点决定：在 0 时正向，在 1 时反向。正在播放时调用无效。
func (s *State) StartUpdating(onStart func()) {
	if s.Dir != 0 {
		return
	}
	s.Dir = 1 - 2*int(s.PrevScale)
	if onStart != nil {
		onStart()
	}
}
