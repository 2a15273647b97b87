// Package intro 实现标题开场序列：阶段时钟 + 序列器。
//
// 本包不依赖 ebiten 或 ECS，宿主每帧调用 IntroSequencer.Update(dt)，
// 再读取 PrimaryOffset / SecondaryVisible 两个输出并写入自己的显示元素。
package intro

// Phase 开场序列阶段
//
// 固定顺序，只前进、不重复、不跳过：
// InitialHold → Reveal → InterStagePause → RevealSecondary → FinalHold
type Phase int

const (
	// InitialHold 黑屏等待，主标题在屏幕外
	InitialHold Phase = iota
	// Reveal 主标题下落
	Reveal
	// InterStagePause 主标题停在终点
	InterStagePause
	// RevealSecondary 副标题出现
	RevealSecondary
	// FinalHold 保持画面，结束后通知宿主
	FinalHold
)

// PhaseCount 阶段数量
const PhaseCount = int(FinalHold) + 1

var phaseNames = [PhaseCount]string{
	InitialHold:     "initialHold",
	Reveal:          "reveal",
	InterStagePause: "interStagePause",
	RevealSecondary: "revealSecondary",
	FinalHold:       "finalHold",
}

// String 返回阶段名称
func (p Phase) String() string {
	if p < InitialHold || p > FinalHold {
		return "unknown"
	}
	return phaseNames[p]
}

// Next 返回下一个阶段；FinalHold 没有下一个阶段，返回 false
func (p Phase) Next() (Phase, bool) {
	if p >= FinalHold {
		return FinalHold, false
	}
	return p + 1, true
}

// IsTerminal 是否为最后一个阶段
func (p Phase) IsTerminal() bool {
	return p == FinalHold
}

// Phases 返回按顺序排列的全部阶段
func Phases() []Phase {
	return []Phase{InitialHold, Reveal, InterStagePause, RevealSecondary, FinalHold}
}
