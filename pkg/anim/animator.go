package anim

import "time"

// DefaultInterval 默认 tick 间隔
const DefaultInterval = 50 * time.Millisecond

// Animator 固定间隔的重复计时器
//
// 计时器不持有 goroutine，由游戏循环每帧调用 Advance 推进，
// 累积的时间每满一个间隔就触发一次回调。Start/Stop 均为幂等操作。
type Animator struct {
	interval time.Duration
	animated bool
	elapsed  time.Duration
	callback func()
}

// NewAnimator 创建计时器，interval <= 0 时使用 DefaultInterval
func NewAnimator(interval time.Duration) *Animator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Animator{interval: interval}
}

// Interval 返回 tick 间隔
func (a *Animator) Interval() time.Duration {
	return a.interval
}

// IsAnimating 计时器是否在运行
func (a *Animator) IsAnimating() bool {
	return a.animated
}

// Start 启动计时器，已在运行时不做任何事
func (a *Animator) Start(cb func()) {
	if a.animated {
		return
	}
	a.animated = true
	a.elapsed = 0
	a.callback = cb
}

// Stop 停止计时器，重复调用是安全的
func (a *Animator) Stop() {
	if !a.animated {
		return
	}
	a.animated = false
	a.elapsed = 0
	a.callback = nil
}

// Advance 推进 dt 时长，返回本次触发的 tick 数
// 回调中调用 Stop 会立即终止剩余的 tick。
func (a *Animator) Advance(dt time.Duration) int {
	if !a.animated || dt <= 0 {
		return 0
	}
	a.elapsed += dt
	ticks := 0
	for a.animated && a.elapsed >= a.interval {
		a.elapsed -= a.interval
		ticks++
		a.callback()
	}
	return ticks
}
