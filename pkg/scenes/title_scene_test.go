package scenes

import (
	"testing"

	"github.com/decker502/tennis/pkg/components"
	"github.com/decker502/tennis/pkg/config"
	"github.com/decker502/tennis/pkg/ecs"
	"github.com/decker502/tennis/pkg/game"
	"github.com/decker502/tennis/pkg/intro"
)

func zeroSequenceConfig() config.SequenceConfig {
	cfg := config.DefaultSequenceConfig()
	cfg.BlackHold = 0
	cfg.DropDuration = 0
	cfg.AfterDropPause = 0
	cfg.SubtitleRevealPause = 0
	cfg.FinalHold = 0
	return cfg
}

// newTitleTestManager 注册 Title 和其余状态的直通场景
func newTitleTestManager(t *testing.T, cfg config.SequenceConfig, hold bool) *game.SceneManager {
	t.Helper()
	sm := game.NewSceneManager()
	sm.RegisterScene(game.StateTitle, NewTitleSceneFactory(nil, func() config.SequenceConfig { return cfg }))
	for _, state := range []game.AppState{game.StateMainMenu, game.StateGame, game.StatePause, game.StateEnd} {
		sm.RegisterScene(state, NewStateSceneFactory(nil, state, hold))
	}
	if err := sm.Start(game.StateTitle); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	return sm
}

// TestTitleScene_Initial 测试标题场景初始实体状态
func TestTitleScene_Initial(t *testing.T) {
	cfg := config.DefaultSequenceConfig()
	scene, err := NewTitleScene(nil, nil, cfg)
	if err != nil {
		t.Fatalf("NewTitleScene() error: %v", err)
	}

	em := scene.EntityManager()
	ids := scene.Entities()

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, ids.Title)
	if !ok || pos.Y != cfg.StartY {
		t.Errorf("主标题应位于 StartY=%v", cfg.StartY)
	}
	txt, _ := ecs.GetComponent[*components.TextComponent](em, ids.Title)
	if txt.Text != config.TitleText || txt.Font != game.FontBold || txt.Size != cfg.TitleSize {
		t.Errorf("主标题文本组件错误: %+v", txt)
	}

	sub, _ := ecs.GetComponent[*components.TextComponent](em, ids.Subtitle)
	if sub.Text != config.SubtitleText || sub.Font != game.FontMono {
		t.Errorf("副标题文本组件错误: %+v", sub)
	}
	vis, _ := ecs.GetComponent[*components.VisibilityComponent](em, ids.Subtitle)
	if vis.Visible {
		t.Error("副标题初始应隐藏")
	}
	titleVis, _ := ecs.GetComponent[*components.VisibilityComponent](em, ids.Title)
	if titleVis.Visible {
		t.Error("主标题在黑屏阶段应隐藏")
	}
	if scene.Sequencer().Phase() != intro.InitialHold {
		t.Errorf("初始阶段应为 InitialHold，实际 %s", scene.Sequencer().Phase())
	}
}

// TestTitleScene_InvalidConfig 测试无效配置返回错误
func TestTitleScene_InvalidConfig(t *testing.T) {
	cfg := config.DefaultSequenceConfig()
	cfg.AfterDropPause = -1
	if _, err := NewTitleScene(nil, nil, cfg); err == nil {
		t.Error("期望返回错误")
	}
}

// TestTitleScene_FactoryFallback 测试工厂在配置无效时回退到默认配置
func TestTitleScene_FactoryFallback(t *testing.T) {
	bad := config.DefaultSequenceConfig()
	bad.Easing = "wobble"
	factory := NewTitleSceneFactory(nil, func() config.SequenceConfig { return bad })

	scene, ok := factory(game.NewSceneManager()).(*TitleScene)
	if !ok || scene == nil {
		t.Fatal("工厂应返回 TitleScene")
	}
	if scene.Sequencer().Config().Easing != config.DefaultSequenceConfig().Easing {
		t.Error("应回退到默认配置")
	}
}

// TestTitleScene_CompletesToMainMenu 测试序列完成后下一帧进入主菜单
func TestTitleScene_CompletesToMainMenu(t *testing.T) {
	sm := newTitleTestManager(t, zeroSequenceConfig(), true)
	title := sm.GetCurrentScene().(*TitleScene)

	sm.Update(0.016) // 序列在这一帧完成，切换被推迟
	if sm.State() != game.StateTitle {
		t.Fatalf("完成当帧仍应处于 Title，实际 %s", sm.State())
	}

	sm.Update(0.016)
	if sm.State() != game.StateMainMenu {
		t.Fatalf("下一帧应进入 MainMenu，实际 %s", sm.State())
	}
	if title.EntityManager().Count() != 0 {
		t.Errorf("退出标题后实体应全部销毁，剩余 %d", title.EntityManager().Count())
	}

	// 退出后的更新不做任何事
	title.Update(1.0)
}

// TestTitleScene_ExitBeforeComplete 测试序列未完成时被切走也会释放实体
func TestTitleScene_ExitBeforeComplete(t *testing.T) {
	scene, err := NewTitleScene(game.NewSceneManager(), nil, config.DefaultSequenceConfig())
	if err != nil {
		t.Fatalf("NewTitleScene() error: %v", err)
	}
	scene.Update(0.5)

	scene.Exit()
	scene.Exit()
	if scene.EntityManager().Count() != 0 {
		t.Errorf("Exit 后实体应全部销毁，剩余 %d", scene.EntityManager().Count())
	}
}

// TestStateScenes_PassThrough 测试直通模式下依次经过所有状态并请求退出
func TestStateScenes_PassThrough(t *testing.T) {
	sm := newTitleTestManager(t, zeroSequenceConfig(), false)

	var visited []game.AppState
	for i := 0; i < 20 && !sm.QuitRequested(); i++ {
		sm.Update(0.016)
		if len(visited) == 0 || visited[len(visited)-1] != sm.State() {
			visited = append(visited, sm.State())
		}
	}

	if !sm.QuitRequested() {
		t.Fatal("到达 End 后应请求退出")
	}
	expected := []game.AppState{game.StateTitle, game.StateMainMenu, game.StateGame, game.StatePause, game.StateEnd}
	if len(visited) != len(expected) {
		t.Fatalf("状态序列: 期望 %v，实际 %v", expected, visited)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("第 %d 个状态: 期望 %s，实际 %s", i, expected[i], visited[i])
		}
	}
}

// TestStateScene_Hold 测试等待模式下需要确认才进入下一个状态
func TestStateScene_Hold(t *testing.T) {
	sm := game.NewSceneManager()
	sm.RegisterScene(game.StateGame, NewStateSceneFactory(nil, game.StateGame, true))
	sm.RegisterScene(game.StatePause, NewStateSceneFactory(nil, game.StatePause, true))
	if err := sm.Start(game.StateGame); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	sm.Update(0.016)
	sm.Update(0.016)
	if sm.State() != game.StateGame {
		t.Fatalf("未确认时应停留在 Game，实际 %s", sm.State())
	}

	sm.GetCurrentScene().(*StateScene).Advance()
	sm.Update(0.016)
	if sm.State() != game.StatePause {
		t.Errorf("确认后应进入 Pause，实际 %s", sm.State())
	}
}

// TestStateScene_EndRequestsQuit 测试进入 End 时请求退出
func TestStateScene_EndRequestsQuit(t *testing.T) {
	sm := game.NewSceneManager()
	sm.RegisterScene(game.StateEnd, NewStateSceneFactory(nil, game.StateEnd, true))
	if err := sm.Start(game.StateEnd); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if !sm.QuitRequested() {
		t.Error("进入 End 应立即请求退出")
	}
}

// TestTitleScene_ReplayWithSwitchTo 测试重播时新实例替换旧实例并释放旧实体
func TestTitleScene_ReplayWithSwitchTo(t *testing.T) {
	sm := game.NewSceneManager()
	cfg := config.DefaultSequenceConfig()

	first, err := NewTitleScene(nil, nil, cfg)
	if err != nil {
		t.Fatalf("NewTitleScene() error: %v", err)
	}
	sm.SwitchTo(first)
	for i := 0; i < 90; i++ {
		sm.Update(1.0 / 60.0)
	}
	if first.Sequencer().Phase() == intro.InitialHold {
		t.Fatal("1.5 秒后应已离开 InitialHold")
	}

	second, err := NewTitleScene(nil, nil, cfg)
	if err != nil {
		t.Fatalf("NewTitleScene() error: %v", err)
	}
	sm.SwitchTo(second)

	if first.EntityManager().Count() != 0 {
		t.Errorf("被替换的标题场景应释放实体，剩余 %d", first.EntityManager().Count())
	}
	if second.Sequencer().Phase() != intro.InitialHold || second.Sequencer().Elapsed() != 0 {
		t.Error("新实例应从 InitialHold 开始")
	}
	if sm.GetCurrentScene() != Scene(second) {
		t.Error("当前场景应为新实例")
	}
}
