package intro

import "fmt"

// PhaseTransition 阶段切换事件
//
// Complete 为 true 时表示最后阶段的时长已满足，From 和 To 均为 FinalHold。
type PhaseTransition struct {
	From     Phase
	To       Phase
	Complete bool
}

// String 用于日志输出
func (t PhaseTransition) String() string {
	if t.Complete {
		return fmt.Sprintf("%s → complete", t.From)
	}
	return fmt.Sprintf("%s → %s", t.From, t.To)
}

// PhaseClock 阶段时钟
//
// 保存当前阶段和阶段内已用时间；每个阶段的退出条件为 elapsed >= duration。
// 切换阶段时 elapsed 归零，超出部分不带入下一阶段。
type PhaseClock struct {
	phase     Phase
	elapsed   float64
	durations [PhaseCount]float64
	completed bool
}

// NewPhaseClock 创建阶段时钟，初始阶段为 InitialHold，elapsed = 0
//
// 负的时长按 0 处理。
func NewPhaseClock(durations [PhaseCount]float64) *PhaseClock {
	for i, d := range durations {
		if !(d >= 0) {
			durations[i] = 0
		}
	}
	return &PhaseClock{
		phase:     InitialHold,
		durations: durations,
	}
}

// Advance 累加时间并检查当前阶段的退出条件
//
// 返回值:
//   - PhaseTransition: 本次发生的切换
//   - bool: 是否发生切换（或完成）
//
// 完成之后的调用不再累加时间，只重复报告完成事件。
func (c *PhaseClock) Advance(dt float64) (PhaseTransition, bool) {
	if c.completed {
		return PhaseTransition{From: FinalHold, To: FinalHold, Complete: true}, true
	}

	// 时间源不应倒退，负值和 NaN 都按 0 处理
	if !(dt > 0) {
		dt = 0
	}
	c.elapsed += dt

	if c.elapsed < c.durations[c.phase] {
		return PhaseTransition{}, false
	}

	next, ok := c.phase.Next()
	if !ok {
		c.completed = true
		return PhaseTransition{From: FinalHold, To: FinalHold, Complete: true}, true
	}

	from := c.phase
	c.phase = next
	c.elapsed = 0
	return PhaseTransition{From: from, To: next}, true
}

// Phase 当前阶段
func (c *PhaseClock) Phase() Phase {
	return c.phase
}

// Elapsed 当前阶段已用时间（秒）
func (c *PhaseClock) Elapsed() float64 {
	return c.elapsed
}

// Completed 是否已完成
func (c *PhaseClock) Completed() bool {
	return c.completed
}

// Duration 指定阶段的时长（秒）
func (c *PhaseClock) Duration(p Phase) float64 {
	if p < InitialHold || p > FinalHold {
		return 0
	}
	return c.durations[p]
}
