package main

import (
	"flag"
	"log"

	"github.com/decker502/gridwalk/pkg/app"
	"github.com/decker502/gridwalk/pkg/config"
	"github.com/decker502/gridwalk/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", true, "显示详细日志")
	configPath = flag.String("config", config.DefaultBoardConfigPath, "棋盘配置文件路径")
	variant    = flag.String("variant", "", "棋盘变体（stepper、picker、combined），为空使用上次设置")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Variant:    *variant,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Grid Walk")
	ebiten.SetFullscreen(gameApp.GetSettingsManager().GetSettings().Fullscreen)

	// This will call Update() and Draw() repeatedly until the window is closed
	runErr := ebiten.RunGame(gameApp)

	if err := gameApp.GetSettingsManager().Save(); err != nil {
		log.Printf("[main] Warning: failed to save settings: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
