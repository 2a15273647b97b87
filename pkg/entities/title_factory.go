package entities

import (
	"log"

	"github.com/decker502/tennis/pkg/components"
	"github.com/decker502/tennis/pkg/config"
	"github.com/decker502/tennis/pkg/ecs"
	"github.com/decker502/tennis/pkg/game"
)

// TitleEntities 标题屏幕的两个文本实体
type TitleEntities struct {
	Title    ecs.EntityID
	Subtitle ecs.EntityID
}

// NewTitleEntities 创建主标题和副标题实体
//
// 主标题初始位于 StartY 且隐藏（黑屏阶段结束后由 TitleRevealSystem 显示），
// 副标题位于 SubtitleY 且初始隐藏。
// 实体归属于 res，标题屏幕退出时随 res.Release() 一起销毁。
func NewTitleEntities(res *ecs.ScreenResources, cfg config.SequenceConfig) TitleEntities {
	title := res.Spawn(
		&components.PositionComponent{Y: cfg.StartY},
		&components.TextComponent{
			Text:  config.TitleText,
			Font:  game.FontBold,
			Size:  cfg.TitleSize,
			Color: config.TextColor,
			Align: components.AlignCenter,
		},
		&components.VisibilityComponent{Visible: false},
	)

	subtitle := res.Spawn(
		&components.PositionComponent{Y: cfg.SubtitleY},
		&components.TextComponent{
			Text:  config.SubtitleText,
			Font:  game.FontMono,
			Size:  cfg.SubtitleSize,
			Color: config.TextColor,
			Align: components.AlignCenter,
		},
		&components.VisibilityComponent{Visible: false},
	)

	log.Printf("[Title Factory] Created title entity %d and subtitle entity %d", title, subtitle)

	return TitleEntities{Title: title, Subtitle: subtitle}
}

// NewCaptionEntities 创建状态屏幕的标题和提示文本实体
//
// 参数：
//   - res: 屏幕资源句柄
//   - caption: 屏幕标题（如 "MAIN MENU"）
//   - hint: 提示文本，为空时不创建
func NewCaptionEntities(res *ecs.ScreenResources, caption, hint string) []ecs.EntityID {
	captionY := float64(config.GameWindowHeight)/2 - config.StateCaptionSize
	ids := []ecs.EntityID{
		res.Spawn(
			&components.PositionComponent{Y: captionY},
			&components.TextComponent{
				Text:  caption,
				Font:  game.FontBold,
				Size:  config.StateCaptionSize,
				Color: config.TextColor,
				Align: components.AlignCenter,
			},
		),
	}

	if hint != "" {
		ids = append(ids, res.Spawn(
			&components.PositionComponent{Y: captionY + config.StateHintOffsetY},
			&components.TextComponent{
				Text:  hint,
				Font:  game.FontRegular,
				Size:  config.StateHintSize,
				Color: config.HintColor,
				Align: components.AlignCenter,
			},
		))
	}

	return ids
}
