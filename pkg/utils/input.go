// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// confirmKeys 视为"确认"的按键
var confirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsConfirmJustPressed 本帧是否按下确认键（Enter / Space）或者点击、触摸屏幕
func IsConfirmJustPressed() bool {
	for _, key := range confirmKeys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	pressed, _, _ := IsJustTouchedOrClicked()
	return pressed
}
