package scenes

import (
	"log"

	"github.com/decker502/tennis/pkg/config"
	"github.com/decker502/tennis/pkg/ecs"
	"github.com/decker502/tennis/pkg/entities"
	"github.com/decker502/tennis/pkg/game"
	"github.com/decker502/tennis/pkg/systems"
	"github.com/decker502/tennis/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 状态屏幕的标题和提示文本
var stateCaptions = map[game.AppState]struct {
	caption string
	hint    string
}{
	game.StateMainMenu: {"MAIN MENU", "press ENTER to play"},
	game.StateGame:     {"GAME", "press ENTER to pause"},
	game.StatePause:    {"PAUSED", "press ENTER to finish"},
	game.StateEnd:      {"THE END", ""},
}

// StateScene MainMenu / Game / Pause / End 的占位屏幕
//
// 默认进入后立即请求下一个状态（直通），hold 为 true 时显示标题和提示，
// 等待 Enter / Space（移动端为触摸）。End 状态进入时请求退出程序。
type StateScene struct {
	sceneManager *game.SceneManager
	state        game.AppState
	hold         bool

	resources    *ecs.ScreenResources
	renderSystem *systems.TextRenderSystem
}

// NewStateScene 创建状态屏幕
func NewStateScene(sm *game.SceneManager, fm *game.FontManager, state game.AppState, hold bool) *StateScene {
	em := ecs.NewEntityManager()
	res := ecs.NewScreenResources(em)

	captions := stateCaptions[state]
	hint := captions.hint
	if !hold {
		hint = ""
	}
	entities.NewCaptionEntities(res, captions.caption, hint)

	scene := &StateScene{
		sceneManager: sm,
		state:        state,
		hold:         hold,
		resources:    res,
		renderSystem: systems.NewTextRenderSystem(em, fm),
	}

	log.Printf("[StateScene] 进入 %s (hold=%v)", state, hold)

	switch {
	case state.IsTerminal():
		sm.RequestQuit()
	case !hold:
		sm.RequestNext()
	}

	return scene
}

// NewStateSceneFactory 返回指定状态的场景工厂
func NewStateSceneFactory(fm *game.FontManager, state game.AppState, hold bool) game.SceneFactory {
	return func(sm *game.SceneManager) game.Scene {
		return NewStateScene(sm, fm, state, hold)
	}
}

// Update 检测确认键
func (s *StateScene) Update(deltaTime float64) {
	if !s.hold || s.state.IsTerminal() {
		return
	}
	if utils.IsConfirmJustPressed() {
		s.Advance()
	}
}

// Advance 请求进入下一个状态
func (s *StateScene) Advance() {
	log.Printf("[StateScene] %s 确认，进入下一个状态", s.state)
	s.sceneManager.RequestNext()
}

// Draw 绘制状态标题
func (s *StateScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderSystem.Draw(screen)
}

// Exit 释放屏幕实体
func (s *StateScene) Exit() {
	s.resources.Release()
}

// State 返回屏幕对应的状态
func (s *StateScene) State() game.AppState {
	return s.state
}
