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

	"github.com/atotto/clipboard"
	"github.com/decker502/gridwalk/pkg/config"
	"github.com/decker502/gridwalk/pkg/game"
	"github.com/decker502/gridwalk/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "gridwalk"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 棋盘配置文件路径，为空时使用 data/board.yaml
	ConfigPath string
	// Variant 指定要加载的棋盘变体，为空则使用上次的设置或配置文件默认值
	Variant string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	boardConfig     *config.BoardConfig
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	// writeClipboard 写剪贴板，测试中可替换
	writeClipboard func(string) error
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源（或保证配置文件在磁盘上）。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultBoardConfigPath
	}
	boardConfig, err := config.LoadBoardConfig(path)
	if err != nil {
		return nil, fmt.Errorf("棋盘配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载棋盘配置: %s (%d 个变体)", path, len(boardConfig.Variants))

	// gdata 不可用时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	return newApp(cfg, boardConfig, settingsManager)
}

// newApp 用已加载的配置和设置组装应用
func newApp(cfg Config, boardConfig *config.BoardConfig, settingsManager *game.SettingsManager) (*App, error) {
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(boardConfig, settingsManager))

	a := &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		boardConfig:     boardConfig,
		verbose:         cfg.Verbose,
		writeClipboard:  clipboard.WriteAll,
	}

	// 确定加载哪个变体：命令行 > 上次设置 > 配置默认值
	variant := cfg.Variant
	if variant == "" {
		variant = settingsManager.GetSettings().Variant
		if _, err := boardConfig.Variant(variant); err != nil {
			log.Printf("[App] Saved variant '%s' not available, using default", variant)
			variant = ""
		}
	}
	if variant == "" {
		variant = boardConfig.DefaultVariant
	}

	if !sceneManager.LoadVariant(variant) {
		return nil, fmt.Errorf("无法加载棋盘变体 '%s'", variant)
	}
	settingsManager.SetVariant(variant)
	log.Printf("[App] Starting variant: %s", variant)
	return a, nil
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

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		a.CopyStatusReport()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.CyclePickingStrategy()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		a.ToggleCoordinates()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.CycleVariant()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
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
}

// gridScene 返回当前的棋盘场景
func (a *App) gridScene() (*scenes.GridScene, bool) {
	s, ok := a.sceneManager.GetCurrentScene().(*scenes.GridScene)
	return s, ok
}

// CopyStatusReport 把当前场景的状态报告写入剪贴板
// 写入失败只记录日志
func (a *App) CopyStatusReport() {
	reporter, ok := a.sceneManager.GetCurrentScene().(game.Reporter)
	if !ok {
		return
	}
	if err := a.writeClipboard(reporter.StatusReport()); err != nil {
		log.Printf("[App] Warning: failed to copy status report: %v", err)
		return
	}
	log.Printf("[App] Status report copied to clipboard")
}

// CyclePickingStrategy 在 events 和 poll 之间切换并保存
func (a *App) CyclePickingStrategy() {
	s, ok := a.gridScene()
	if !ok {
		return
	}
	next := config.PickingPoll
	if s.PickingStrategy() == config.PickingPoll {
		next = config.PickingEvents
	}
	if err := s.SetPickingStrategy(next); err != nil {
		log.Printf("[App] Warning: %v", err)
		return
	}
	a.settingsManager.SetPickingStrategy(next)
	a.saveSettings()
}

// ToggleCoordinates 切换格子坐标显示并保存
func (a *App) ToggleCoordinates() {
	s, ok := a.gridScene()
	if !ok {
		return
	}
	a.settingsManager.SetShowCoordinates(s.ToggleCoordinates())
	a.saveSettings()
}

// CycleVariant 按名称顺序切换到下一个棋盘变体
func (a *App) CycleVariant() {
	names := a.boardConfig.VariantNames()
	current := a.sceneManager.CurrentVariant()
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if a.sceneManager.LoadVariant(next) {
		a.settingsManager.SetVariant(next)
		a.saveSettings()
	}
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
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
	// 先填充黑色背景（全屏时两边为黑色）
	screen.Fill(color.Black)
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

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager 返回设置管理器
// 用于在游戏关闭时保存设置
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
