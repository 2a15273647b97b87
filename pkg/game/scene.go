package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a full-screen state (title, main menu, gameplay, pause, end).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Exiter 是一个可选接口，场景退出时释放自己创建的显示元素
//
// SceneManager 切换场景时，如果旧场景实现了此接口，会先调用 Exit()。
// 无论场景是正常结束还是被外部切走，都会调用。
type Exiter interface {
	Exit()
}
