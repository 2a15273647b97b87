package systems

import (
	"log"

	"github.com/decker502/tennis/pkg/components"
	"github.com/decker502/tennis/pkg/ecs"
	"github.com/decker502/tennis/pkg/intro"
)

// TitleRevealSystem 将开场序列器的输出写入标题实体
//
// 每帧先推进序列器（阶段切换先于输出计算），再把主标题位置、可见性和副标题可见性
// 写入对应组件；完成的那一帧调用完成回调一次。
type TitleRevealSystem struct {
	entityManager  *ecs.EntityManager
	sequencer      *intro.IntroSequencer
	titleEntity    ecs.EntityID
	subtitleEntity ecs.EntityID

	// 完成回调（由 TitleScene 提供，用于请求切换到主菜单）
	onCompleteCallback func()
}

// NewTitleRevealSystem 创建标题动画系统，并立即写入初始输出
func NewTitleRevealSystem(em *ecs.EntityManager, seq *intro.IntroSequencer, titleEntity, subtitleEntity ecs.EntityID) *TitleRevealSystem {
	s := &TitleRevealSystem{
		entityManager:  em,
		sequencer:      seq,
		titleEntity:    titleEntity,
		subtitleEntity: subtitleEntity,
	}
	s.apply()
	return s
}

// SetCompleteCallback 设置完成回调
func (s *TitleRevealSystem) SetCompleteCallback(callback func()) {
	s.onCompleteCallback = callback
}

// Sequencer 返回序列器（调试显示使用）
func (s *TitleRevealSystem) Sequencer() *intro.IntroSequencer {
	return s.sequencer
}

// Update 推进一帧
func (s *TitleRevealSystem) Update(deltaTime float64) {
	completed := s.sequencer.Update(deltaTime)
	s.apply()

	if completed {
		log.Printf("[TitleRevealSystem] Title sequence completed")
		if s.onCompleteCallback != nil {
			s.onCompleteCallback()
		}
	}
}

// apply 把序列器输出写入实体组件
func (s *TitleRevealSystem) apply() {
	out := s.sequencer.Outputs()

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.titleEntity); ok {
		pos.Y = out.PrimaryOffset
	}
	if vis, ok := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, s.titleEntity); ok {
		vis.Visible = out.PrimaryVisible
	}
	if vis, ok := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, s.subtitleEntity); ok {
		vis.Visible = out.SecondaryVisible
	}
}
