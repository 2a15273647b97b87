package config

import "image/color"

// 布局配置常量
// 本文件定义窗口尺寸和各屏幕共用的 UI 参数

// 窗口配置
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度（像素）
	// 默认预设中主标题与副标题的位置都是按此高度计算的
	GameWindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Tennis for Two (text)"

	// AppName gdata 存储使用的应用名称
	AppName = "tennis_for_two"
)

// 标题屏幕文本
const (
	TitleText    = "TENNIS FOR TWO"
	SubtitleText = "a text-only homage"
)

// 状态屏幕（主菜单 / 游戏 / 暂停 / 结束）参数
const (
	// StateCaptionSize 屏幕标题字号
	StateCaptionSize = 64.0

	// StateHintSize 提示文本字号
	StateHintSize = 24.0

	// StateHintOffsetY 提示文本相对于标题的纵向偏移
	StateHintOffsetY = 96.0
)

var (
	// BackgroundColor 所有屏幕的背景色
	BackgroundColor = color.Black

	// TextColor 默认文本颜色
	TextColor = color.White

	// HintColor 提示文本颜色
	HintColor = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// CenteredX 返回宽度为 width 的元素水平居中时的左上角 X 坐标
func CenteredX(width float64) float64 {
	return (float64(GameWindowWidth) - width) / 2
}
