package components

import "image/color"

// 文本水平对齐方式
const (
	// AlignLeft X 为文本左边缘
	AlignLeft = iota
	// AlignCenter 文本在逻辑屏幕内水平居中，忽略 PositionComponent.X
	AlignCenter
)

// TextComponent 文本显示组件
//
// 由 TextRenderSystem 绘制，需要同时拥有 PositionComponent。
type TextComponent struct {
	Text  string
	Font  string  // 字体名称，见 game.FontBold / FontMono / FontRegular
	Size  float64 // 字号（像素）
	Color color.Color
	Align int
}
