package systems

import (
	"log"

	"github.com/decker502/tennis/pkg/components"
	"github.com/decker502/tennis/pkg/config"
	"github.com/decker502/tennis/pkg/ecs"
	"github.com/decker502/tennis/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextRenderSystem 绘制所有可见的文本实体
type TextRenderSystem struct {
	entityManager *ecs.EntityManager
	fontManager   *game.FontManager

	// 已报告过的字体错误，避免每帧重复输出日志
	reportedErrors map[string]bool
}

// NewTextRenderSystem 创建文本渲染系统
func NewTextRenderSystem(em *ecs.EntityManager, fm *game.FontManager) *TextRenderSystem {
	return &TextRenderSystem{
		entityManager:  em,
		fontManager:    fm,
		reportedErrors: make(map[string]bool),
	}
}

// VisibleTextEntities 返回需要绘制的文本实体（按创建顺序）
func (s *TextRenderSystem) VisibleTextEntities() []ecs.EntityID {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.TextComponent](s.entityManager)
	visible := entities[:0]
	for _, id := range entities {
		if vis, ok := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, id); ok && !vis.Visible {
			continue
		}
		visible = append(visible, id)
	}
	return visible
}

// Draw 绘制文本
func (s *TextRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.VisibleTextEntities() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		txt, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, id)

		face, err := s.fontManager.Face(txt.Font, txt.Size)
		if err != nil {
			if !s.reportedErrors[txt.Font] {
				log.Printf("[TextRenderSystem] 字体加载失败: %v", err)
				s.reportedErrors[txt.Font] = true
			}
			continue
		}

		x := pos.X
		if txt.Align == components.AlignCenter {
			width, _ := text.Measure(txt.Text, face, 0)
			x = config.CenteredX(width)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, pos.Y)
		if txt.Color != nil {
			op.ColorScale.ScaleWithColor(txt.Color)
		}
		text.Draw(screen, txt.Text, face, op)
	}
}
