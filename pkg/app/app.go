// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/tennis/pkg/config"
	"github.com/decker502/tennis/pkg/embedded"
	"github.com/decker502/tennis/pkg/game"
	"github.com/decker502/tennis/pkg/scenes"
	"github.com/decker502/tennis/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Preset 开场序列预设名称，为空则使用上次保存的预设或 default
	Preset string
	// ConfigPath 开场序列覆盖文件（YAML），为空则不使用
	ConfigPath string
	// Watch 监听覆盖文件变化，修改后对下一次标题屏幕生效
	Watch bool
	// HoldStates 状态屏幕等待 Enter/Space 确认，否则直接进入下一个状态
	HoldStates bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	introSource     *config.IntroSource
	watcher         *config.Watcher

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载内嵌预设
	presets, err := LoadIntroPresets()
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载开场预设: %v", presets.Names())

	// 打开设置存储（失败时降级为仅内存设置）
	storage, err := game.OpenStorage(config.AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not be persisted)", err)
	}
	settingsManager := game.NewSettingsManager(storage)

	// 命令行预设优先，其次是上次保存的预设
	presetName := cfg.Preset
	if presetName == "" {
		saved := settingsManager.GetSettings().IntroPreset
		if _, ok := presets.Get(saved); ok {
			presetName = saved
		} else if saved != "" {
			log.Printf("[App] 保存的预设 %q 不存在，使用默认预设", saved)
		}
	}

	introSource, err := config.NewIntroSource(presets, presetName, cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("开场配置加载失败: %w", err)
	}
	if cfg.Preset != "" {
		settingsManager.SetIntroPreset(introSource.PresetName())
	}

	fontManager, err := game.NewFontManager()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	// 创建场景管理器并注册所有状态
	sceneManager := game.NewSceneManager()
	RegisterScenes(sceneManager, fontManager, introSource.Current, cfg.HoldStates)

	a := &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		introSource:     introSource,
		verbose:         cfg.Verbose,
	}

	if cfg.Watch {
		a.startWatcher()
	}

	if err := sceneManager.Start(game.StateTitle); err != nil {
		a.Shutdown()
		return nil, err
	}

	log.Printf("[App] 启动完成 (preset=%s)", introSource.PresetName())
	return a, nil
}

// LoadIntroPresets 从内嵌数据加载开场预设
func LoadIntroPresets() (*config.IntroPresets, error) {
	data, err := embedded.ReadFile(config.IntroPresetsPath)
	if err != nil {
		return nil, fmt.Errorf("开场预设读取失败: %w", err)
	}
	presets, err := config.ParseIntroPresets(data)
	if err != nil {
		return nil, fmt.Errorf("开场预设解析失败: %w", err)
	}
	return presets, nil
}

// RegisterScenes 为每个状态注册场景工厂
//
// introConfig 在每次进入 Title 时调用。
func RegisterScenes(sm *game.SceneManager, fm *game.FontManager, introConfig func() config.SequenceConfig, holdStates bool) {
	sm.RegisterScene(game.StateTitle, scenes.NewTitleSceneFactory(fm, introConfig))
	for _, state := range []game.AppState{game.StateMainMenu, game.StateGame, game.StatePause, game.StateEnd} {
		sm.RegisterScene(state, scenes.NewStateSceneFactory(fm, state, holdStates))
	}
}

// startWatcher 监听覆盖文件所在目录
func (a *App) startWatcher() {
	dir := a.introSource.WatchDir()
	if dir == "" {
		log.Printf("[App] --watch 需要配合 --config 使用，忽略")
		return
	}

	watcher, err := config.NewWatcher(dir)
	if err != nil {
		log.Printf("[App] Warning: 无法监听配置目录 %s: %v", dir, err)
		return
	}
	a.watcher = watcher
	log.Printf("[App] 监听配置目录: %s", dir)
}

// pollWatcher 处理配置文件变化（非阻塞）
func (a *App) pollWatcher() {
	if a.watcher == nil {
		return
	}

	for {
		name, ok := a.watcher.Poll()
		if !ok {
			break
		}
		if !a.introSource.Matches(name) {
			continue
		}
		if err := a.introSource.Reload(); err != nil {
			log.Printf("[App] 配置重载失败，保留之前的配置: %v", err)
			continue
		}
		log.Printf("[App] 配置已重载，下一次标题屏幕生效")
	}

	select {
	case err := <-a.watcher.Errors:
		log.Printf("[App] Watcher error: %v", err)
	default:
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	return a.step(1.0 / 60.0)
}

// step 推进一帧，到达 End 后返回 ebiten.Termination
func (a *App) step(deltaTime float64) error {
	a.pollWatcher()
	a.sceneManager.Update(deltaTime)

	if a.sceneManager.QuitRequested() {
		log.Printf("[App] 退出请求，结束游戏循环")
		return ebiten.Termination
	}
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		a.settingsManager.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}

	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: 保存设置失败: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 退出当前场景、停止监听并保存设置
// 在 ebiten.RunGame 返回后调用
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Warning: 关闭配置监听失败: %v", err)
		}
		a.watcher = nil
	}

	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: 保存设置失败: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
