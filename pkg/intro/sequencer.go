package intro

import (
	"fmt"
	"log"

	"github.com/decker502/tennis/pkg/config"
	"github.com/decker502/tennis/pkg/utils"
)

// Outputs 序列器每帧的输出
type Outputs struct {
	PrimaryOffset    float64 // 主标题纵向位置
	PrimaryVisible   bool    // 主标题是否可见
	SecondaryVisible bool    // 副标题是否可见
}

// IntroSequencer 标题开场序列器
//
// 持有阶段时钟和不可变配置，每帧根据当前阶段计算输出，
// 并在 FinalHold 时长满足的那一帧通知宿主一次。
// 序列器不会自行重置，重播需要创建新实例。
type IntroSequencer struct {
	cfg   config.SequenceConfig
	clock *PhaseClock
	ease  utils.EasingFunc

	visited []Phase
	done    bool

	onComplete   func()
	onTransition func(PhaseTransition)
}

// NewIntroSequencer 创建序列器
//
// 返回:
//   - *IntroSequencer: 处于 InitialHold、elapsed = 0 的序列器
//   - error: 配置无效（负时长、未知缓动等）
func NewIntroSequencer(cfg config.SequenceConfig) (*IntroSequencer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid intro config: %w", err)
	}

	ease, err := utils.EasingByName(cfg.Easing)
	if err != nil {
		return nil, err
	}

	clock := NewPhaseClock([PhaseCount]float64{
		InitialHold:     cfg.BlackHold,
		Reveal:          cfg.DropDuration,
		InterStagePause: cfg.AfterDropPause,
		RevealSecondary: cfg.SubtitleRevealPause,
		FinalHold:       cfg.FinalHold,
	})

	return &IntroSequencer{
		cfg:     cfg,
		clock:   clock,
		ease:    ease,
		visited: []Phase{InitialHold},
	}, nil
}

// SetCompleteCallback 设置完成回调（整个生命周期内最多调用一次）
func (s *IntroSequencer) SetCompleteCallback(callback func()) {
	s.onComplete = callback
}

// SetTransitionCallback 设置阶段切换回调
func (s *IntroSequencer) SetTransitionCallback(callback func(PhaseTransition)) {
	s.onTransition = callback
}

// Update 推进一帧
//
// 切换阶段后以 0 增量重新检查新阶段，时长为 0 的阶段在同一帧内依次通过。
// 仅在完成发生的那一帧返回 true；完成之后的调用不做任何事并返回 false。
func (s *IntroSequencer) Update(dt float64) bool {
	if s.done {
		return false
	}

	delta := dt
	for {
		transition, ok := s.clock.Advance(delta)
		delta = 0
		if !ok {
			return false
		}

		if transition.Complete {
			s.done = true
			log.Printf("[IntroSequencer] Sequence complete")
			if s.onTransition != nil {
				s.onTransition(transition)
			}
			if s.onComplete != nil {
				s.onComplete()
			}
			return true
		}

		s.visited = append(s.visited, transition.To)
		log.Printf("[IntroSequencer] Phase: %s", transition)
		if s.onTransition != nil {
			s.onTransition(transition)
		}
	}
}

// Phase 当前阶段
func (s *IntroSequencer) Phase() Phase {
	return s.clock.Phase()
}

// Elapsed 当前阶段已用时间（秒）
func (s *IntroSequencer) Elapsed() float64 {
	return s.clock.Elapsed()
}

// Done 是否已完成
func (s *IntroSequencer) Done() bool {
	return s.done
}

// Config 返回序列配置
func (s *IntroSequencer) Config() config.SequenceConfig {
	return s.cfg
}

// Visited 返回已进入的阶段列表（按进入顺序）
func (s *IntroSequencer) Visited() []Phase {
	visited := make([]Phase, len(s.visited))
	copy(visited, s.visited)
	return visited
}

// PrimaryOffset 主标题纵向位置
//
//   - InitialHold: StartY（屏幕外）
//   - Reveal: 从 StartY 到 EndY 的缓动插值
//   - 之后所有阶段: EndY
func (s *IntroSequencer) PrimaryOffset() float64 {
	switch s.clock.Phase() {
	case InitialHold:
		return s.cfg.StartY
	case Reveal:
		return s.revealOffset(s.clock.Elapsed())
	default:
		return s.cfg.EndY
	}
}

// revealOffset 计算下落阶段的位置，进度先限制在 [0, 1] 再做缓动
func (s *IntroSequencer) revealOffset(elapsed float64) float64 {
	t := 1.0
	if s.cfg.DropDuration > 0 {
		t = utils.Clamp01(elapsed / s.cfg.DropDuration)
	}
	return utils.Lerp(s.cfg.StartY, s.cfg.EndY, s.ease(t))
}

// PrimaryVisible 主标题是否可见
// InitialHold 期间隐藏，不依赖 StartY 是否在屏幕外
func (s *IntroSequencer) PrimaryVisible() bool {
	return s.clock.Phase() != InitialHold
}

// SecondaryVisible 副标题是否可见（进入 RevealSecondary 起为 true，不再变回 false）
func (s *IntroSequencer) SecondaryVisible() bool {
	return s.clock.Phase() >= RevealSecondary
}

// Outputs 返回当前帧的全部输出
func (s *IntroSequencer) Outputs() Outputs {
	return Outputs{
		PrimaryOffset:    s.PrimaryOffset(),
		PrimaryVisible:   s.PrimaryVisible(),
		SecondaryVisible: s.SecondaryVisible(),
	}
}

// Progress 整个序列的进度 [0, 1]，用于调试显示
func (s *IntroSequencer) Progress() float64 {
	if s.done {
		return 1
	}
	total := s.cfg.TotalDuration()
	if total <= 0 {
		return 0
	}

	passed := s.clock.Elapsed()
	for _, p := range Phases() {
		if p >= s.clock.Phase() {
			break
		}
		passed += s.clock.Duration(p)
	}
	return utils.Clamp01(passed / total)
}
