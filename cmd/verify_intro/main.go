package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/tennis/pkg/app"
	"github.com/decker502/tennis/pkg/config"
	"github.com/decker502/tennis/pkg/embedded"
	"github.com/decker502/tennis/pkg/game"
	"github.com/decker502/tennis/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	// 命令行参数
	presetFlag = flag.String("preset", "", "开场序列预设（default / brisk / demo）")
	configFlag = flag.String("config", "", "开场序列覆盖文件（YAML）")
	watchFlag  = flag.Bool("watch", false, "监听 --config 文件变化，按 R 重播时生效")
	speedFlag  = flag.Float64("speed", 1.0, "时间倍率（2.0 = 两倍速）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

// VerifyIntroGame 标题开场序列验证程序
// 只运行标题屏幕，完成后停在最后一帧，按 R 重播
type VerifyIntroGame struct {
	sceneManager *game.SceneManager
	fontManager  *game.FontManager
	introSource *config.IntroSource
	watcher     *config.Watcher

	scene     *scenes.TitleScene
	completed bool
	runs      int
}

// NewVerifyIntroGame 创建验证程序实例
func NewVerifyIntroGame() (*VerifyIntroGame, error) {
	// 从工作目录读取 data/（需要在项目根目录运行）
	embedded.Init(os.DirFS("."))

	presets, err := app.LoadIntroPresets()
	if err != nil {
		return nil, err
	}

	source, err := config.NewIntroSource(presets, *presetFlag, *configFlag)
	if err != nil {
		return nil, err
	}

	fm, err := game.NewFontManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	vg := &VerifyIntroGame{
		sceneManager: game.NewSceneManager(),
		fontManager:  fm,
		introSource: source,
	}

	if *watchFlag {
		if dir := source.WatchDir(); dir != "" {
			w, err := config.NewWatcher(dir)
			if err != nil {
				log.Printf("[VerifyIntro] Warning: 无法监听 %s: %v", dir, err)
			} else {
				vg.watcher = w
			}
		} else {
			log.Println("[VerifyIntro] --watch 需要配合 --config 使用")
		}
	}

	log.Println("╔════════════════════════════════════════════════════════╗")
	log.Println("║            标题开场序列验证程序                        ║")
	log.Println("╚════════════════════════════════════════════════════════╝")
	log.Printf("  预设: %s（可用: %v）", source.PresetName(), presets.Names())
	log.Printf("  时间倍率: %.2f", *speedFlag)
	log.Println()
	log.Println("【验证流程】")
	log.Println("  InitialHold → Reveal → InterStagePause → RevealSecondary → FinalHold")
	log.Println()
	log.Println("【快捷键】")
	log.Println("  R - 重播（创建新的序列器）")
	log.Println("  Q - 退出程序")
	log.Println("════════════════════════════════════════════════════════")

	if err := vg.restart(); err != nil {
		return nil, err
	}
	return vg, nil
}

// restart 用当前配置创建新的标题场景
// SwitchTo 会先退出上一次播放的场景并释放其实体
func (vg *VerifyIntroGame) restart() error {
	// 不传场景管理器：播放完成后停在最后一帧，不切换到主菜单
	scene, err := scenes.NewTitleScene(nil, vg.fontManager, vg.introSource.Current())
	if err != nil {
		return err
	}

	vg.runs++
	vg.completed = false

	run := vg.runs
	scene.Sequencer().SetCompleteCallback(func() {
		vg.completed = true
		log.Printf("[VerifyIntro] ✅ 第 %d 次播放完成，经过阶段: %v", run, scene.Sequencer().Visited())
	})

	vg.scene = scene
	vg.sceneManager.SwitchTo(scene)
	return nil
}

// pollWatcher 处理配置文件变化
func (vg *VerifyIntroGame) pollWatcher() {
	if vg.watcher == nil {
		return
	}
	for {
		name, ok := vg.watcher.Poll()
		if !ok {
			return
		}
		if !vg.introSource.Matches(name) {
			continue
		}
		if err := vg.introSource.Reload(); err != nil {
			log.Printf("[VerifyIntro] ❌ 配置重载失败: %v", err)
			continue
		}
		log.Println("[VerifyIntro] 🔄 配置已重载，按 R 重播")
	}
}

// Update 更新游戏逻辑
func (vg *VerifyIntroGame) Update() error {
	vg.pollWatcher()

	// 快捷键：R 键重播
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		log.Println("[VerifyIntro] 🔄 重播")
		if err := vg.restart(); err != nil {
			log.Printf("[VerifyIntro] ❌ 重播失败: %v", err)
		}
		return nil
	}

	// 快捷键：Q 键退出
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		log.Println("[VerifyIntro] 👋 退出验证程序")
		return ebiten.Termination
	}

	dt := 1.0 / 60.0 * *speedFlag
	vg.sceneManager.Update(dt)
	return nil
}

// Draw 绘制标题场景和调试信息
func (vg *VerifyIntroGame) Draw(screen *ebiten.Image) {
	vg.sceneManager.Draw(screen)

	seq := vg.scene.Sequencer()
	out := seq.Outputs()
	status := "running"
	if vg.completed {
		status = "COMPLETE (R to replay)"
	}

	debugText := fmt.Sprintf(
		"run #%d  preset=%s  speed=%.2fx\nphase=%s  elapsed=%.3fs  progress=%.0f%%\nprimaryY=%.1f  primaryVisible=%v  secondaryVisible=%v\n%s",
		vg.runs, vg.introSource.PresetName(), *speedFlag,
		seq.Phase(), seq.Elapsed(), seq.Progress()*100,
		out.PrimaryOffset, out.PrimaryVisible, out.SecondaryVisible,
		status,
	)
	ebitenutil.DebugPrint(screen, debugText)
}

// Layout 返回逻辑屏幕尺寸
func (vg *VerifyIntroGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetFlags(0)
	}
	if *speedFlag <= 0 {
		log.Fatalf("--speed must be > 0, got %v", *speedFlag)
	}

	vg, err := NewVerifyIntroGame()
	if err != nil {
		log.Fatalf("Failed to create verify game: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Verify Intro - " + config.WindowTitle)

	runErr := ebiten.RunGame(vg)

	vg.sceneManager.Shutdown()
	if vg.watcher != nil {
		if err := vg.watcher.Close(); err != nil {
			log.Printf("[VerifyIntro] Warning: 关闭配置监听失败: %v", err)
		}
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
