package main

import (
	"flag"
	"log"

	"github.com/decker502/tennis/pkg/app"
	"github.com/decker502/tennis/pkg/config"
	"github.com/decker502/tennis/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	preset     = flag.String("preset", "", "开场序列预设（default / brisk / demo）")
	configPath = flag.String("config", "", "开场序列覆盖文件（YAML）")
	watch      = flag.Bool("watch", false, "监听 --config 文件变化并热重载")
	hold       = flag.Bool("hold", false, "状态屏幕等待 Enter/Space 确认")
	fullscreen = flag.Bool("fullscreen", false, "全屏启动")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Preset:     *preset,
		ConfigPath: *configPath,
		Watch:      *watch,
		HoldStates: *hold,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// Set window properties
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if *fullscreen || gameApp.GetSettingsManager().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// Start the game loop
	// RunGame 在 App.Update 返回 ebiten.Termination 时正常返回 nil
	runErr := ebiten.RunGame(gameApp)
	gameApp.Shutdown()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
