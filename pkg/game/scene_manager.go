package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 每次进入状态时创建新的场景实例
type SceneFactory func(sm *SceneManager) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 状态切换是延迟的：RequestState 只记录目标状态，
// 下一次 Update 开始时才退出旧场景、创建新场景。
type SceneManager struct {
	currentScene Scene
	state        AppState
	factories    map[AppState]SceneFactory

	pendingState  AppState
	hasPending    bool
	quitRequested bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Start to enter the initial state.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[AppState]SceneFactory),
	}
}

// RegisterScene 注册状态对应的场景工厂
func (sm *SceneManager) RegisterScene(state AppState, factory SceneFactory) {
	sm.factories[state] = factory
}

// Start 立即进入指定状态（用于启动时设置初始场景）
func (sm *SceneManager) Start(state AppState) error {
	return sm.enter(state)
}

// RequestState 请求在下一次 Update 时切换到指定状态
func (sm *SceneManager) RequestState(state AppState) {
	log.Printf("[SceneManager] 请求切换状态: %s → %s", sm.state, state)
	sm.pendingState = state
	sm.hasPending = true
}

// RequestNext 请求切换到状态图中的下一个状态
// 当前状态为最终状态时请求退出程序
func (sm *SceneManager) RequestNext() {
	next, ok := sm.state.Next()
	if !ok {
		sm.RequestQuit()
		return
	}
	sm.RequestState(next)
}

// RequestQuit 请求退出程序
func (sm *SceneManager) RequestQuit() {
	log.Printf("[SceneManager] 请求退出")
	sm.quitRequested = true
}

// QuitRequested 是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quitRequested
}

// State 返回当前状态
func (sm *SceneManager) State() AppState {
	return sm.state
}

// SwitchTo changes the active scene to the provided scene without changing the state.
// The previous scene is exited first if it implements Exiter.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.exitCurrent()
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Shutdown 退出当前场景（程序关闭时调用）
func (sm *SceneManager) Shutdown() {
	sm.exitCurrent()
	sm.currentScene = nil
}

// Update applies any pending state change, then updates the active scene.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.hasPending {
		sm.hasPending = false
		if err := sm.enter(sm.pendingState); err != nil {
			log.Printf("[SceneManager] 错误: %v", err)
		}
	}

	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// enter 退出旧场景并通过工厂创建新状态的场景
func (sm *SceneManager) enter(state AppState) error {
	factory, ok := sm.factories[state]
	if !ok {
		return fmt.Errorf("no scene registered for state %s", state)
	}

	sm.exitCurrent()
	sm.state = state
	sm.currentScene = factory(sm)
	log.Printf("[SceneManager] 进入状态: %s", state)
	return nil
}

func (sm *SceneManager) exitCurrent() {
	if exiter, ok := sm.currentScene.(Exiter); ok {
		exiter.Exit()
	}
}
