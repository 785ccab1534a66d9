package scenes

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/config"
	"github.com/decker502/gridwalk/pkg/ecs"
	"github.com/decker502/gridwalk/pkg/entities"
	"github.com/decker502/gridwalk/pkg/game"
	"github.com/decker502/gridwalk/pkg/picking"
	"github.com/decker502/gridwalk/pkg/systems"
	"github.com/decker502/gridwalk/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// BackgroundColor 场景背景色
var BackgroundColor = color.RGBA{R: 40, G: 44, B: 52, A: 255}

// GridScene 一个棋盘变体的完整场景
//
// 持有实体、移动 UI 状态和所有系统，每个 tick 按固定顺序运行：
//
//	镜头 -> 拾取器 -> 开关 -> 悬停指示器 -> 清理 -> 拾取移动 -> 逐格移动 -> 清理已删除实体
type GridScene struct {
	variantName string
	variant     config.BoardVariant
	strategy    string

	entityManager *ecs.EntityManager
	ui            *game.MovementUIState
	events        picking.Queue
	picker        *picking.ScreenPicker // 未启用拾取控制时为 nil

	cameraSystem   *systems.CameraSystem
	toggleSystem   *systems.MovementUIToggleSystem
	hoverSystem    *systems.HoverIndicatorSystem
	cleanupSystem  *systems.IndicatorCleanupSystem
	tilePickSystem *systems.TilePickMovementSystem
	stepSystem     *systems.StepMovementSystem
	renderSystem   *systems.RenderSystem
	hudFace        text.Face
	lastProjection utils.Projection
	tickCount      int
}

// NewGridScene 创建棋盘场景
//
// 参数:
//   - variantName: 变体名（用于 HUD 和调试报告）
//   - variant: 变体配置，必须已通过 Validate
//   - settings: 用户设置，可为 nil；PickingStrategy 非空且有效时覆盖变体的策略，无效时回退到变体策略
//
// 返回:
//   - *GridScene: 场景实例
//   - error: 变体配置或策略无效时返回错误
func NewGridScene(variantName string, variant config.BoardVariant, settings *game.GameSettings) (*GridScene, error) {
	if err := variant.Validate(); err != nil {
		return nil, fmt.Errorf("invalid variant '%s': %w", variantName, err)
	}

	strategy := variant.PickingStrategy
	if settings != nil && settings.PickingStrategy != "" {
		if err := config.ValidatePickingStrategy(settings.PickingStrategy); err != nil {
			log.Printf("[GridScene] Warning: ignoring picking strategy override: %v (using '%s')", err, strategy)
		} else {
			strategy = settings.PickingStrategy
		}
	}
	hoverStrategy, err := systems.NewHoverStrategy(strategy)
	if err != nil {
		return nil, fmt.Errorf("invalid picking strategy: %w", err)
	}

	em := ecs.NewEntityManager()
	if _, err := entities.NewGrid(em, variant.BoardHalfExtent, variant.TileElevation()); err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}
	if _, err := entities.NewPlayerEntity(em, variant.PlayerStartElevation); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	cameraEntity := entities.NewCameraEntity(em, variant.CameraFollowsPlayer)

	s := &GridScene{
		variantName:   variantName,
		variant:       variant,
		strategy:      strategy,
		entityManager: em,
		ui:            game.NewMovementUIState(),
		cameraSystem:  systems.NewCameraSystem(em, cameraEntity),
		renderSystem:  systems.NewRenderSystem(em),
		hudFace:       text.NewGoXFace(basicfont.Face7x13),
	}

	if variant.HasControl(config.ControlPick) {
		s.picker = picking.NewScreenPicker(em, variant.BoardHalfExtent, variant.TileElevation())
		if variant.MovementUIAlwaysOn {
			s.ui.Enabled = true
		} else {
			s.toggleSystem = systems.NewMovementUIToggleSystem(em)
		}
		s.hoverSystem = systems.NewHoverIndicatorSystem(em, hoverStrategy)
		s.cleanupSystem = systems.NewIndicatorCleanupSystem(em)
		s.tilePickSystem = systems.NewTilePickMovementSystem(em, variant.SeatedElevation(), strategy)
	}
	if variant.HasControl(config.ControlStep) {
		yield := variant.HasControl(config.ControlPick)
		s.stepSystem = systems.NewStepMovementSystem(em, variant.BoardHalfExtent,
			variant.GroundElevation, variant.MaxElevation, yield)
	}

	if settings != nil {
		s.renderSystem.ShowCoordinates = settings.ShowCoordinates
	}

	s.lastProjection = s.projection()
	log.Printf("[GridScene] 创建变体 %s: B=%d, controls=%v, picking=%s",
		variantName, variant.BoardHalfExtent, variant.Controls, strategy)
	return s, nil
}

// Update 实现 game.Scene 接口，读取 ebiten 输入并运行一个 tick
func (s *GridScene) Update(deltaTime float64) {
	s.Tick(utils.CaptureFrameInput())
}

// Tick 用给定输入运行一个 tick（不依赖窗口，可在测试中直接调用）
func (s *GridScene) Tick(input utils.FrameInput) {
	s.tickCount++

	s.cameraSystem.Update(input.Pointer) // 1. 镜头平移/缩放
	s.lastProjection = s.projection()

	var picker picking.Picker = picking.NoPicker{}
	if s.picker != nil {
		s.picker.Update(input.Pointer, s.lastProjection, &s.events) // 2. 拾取器产生悬停/选中事件
		picker = s.picker
	}

	ctx := systems.NewTickContext(input.Keys, s.events.Drain(), picker, s.ui)

	if s.toggleSystem != nil {
		s.toggleSystem.Update(ctx) // 3. 移动 UI 开关（始终开启的变体没有开关）
	}
	if s.hoverSystem != nil {
		s.hoverSystem.Update(ctx)    // 4. 悬停指示器
		s.cleanupSystem.Update(ctx)  // 5. UI 关闭时清理残留指示器
		s.tilePickSystem.Update(ctx) // 6. 拾取移动
	}
	if s.stepSystem != nil {
		s.stepSystem.Update(ctx) // 7. 逐格移动
	}

	s.entityManager.RemoveMarkedEntities() // 8. 清理已删除实体（始终最后）
}

// projection 根据镜头和玩家位置计算当前投影
func (s *GridScene) projection() utils.Projection {
	if _, player, ok := entities.FindPlayer(s.entityManager); ok {
		pos := player.Position
		return s.cameraSystem.Projection(&pos)
	}
	return s.cameraSystem.Projection(nil)
}

// Draw 实现 game.Scene 接口
func (s *GridScene) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)
	s.renderSystem.Draw(screen, s.projection())
	s.drawHUD(screen)
}

func (s *GridScene) drawHUD(screen *ebiten.Image) {
	for i, line := range s.hudLines() {
		opts := &text.DrawOptions{}
		opts.GeoM.Translate(config.HUDMarginX, config.HUDMarginY+float64(i)*config.HUDLineHeight)
		opts.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, s.hudFace, opts)
	}
}

// hudLines 返回 HUD 显示的文字
func (s *GridScene) hudLines() []string {
	lines := []string{fmt.Sprintf("%s  B=%d", s.variantName, s.variant.BoardHalfExtent)}
	if _, player, ok := entities.FindPlayer(s.entityManager); ok {
		p := player.Position
		lines = append(lines, fmt.Sprintf("player (%.1f, %.1f, %.1f)", p.X, p.Y, p.Z))
	}

	var hints []string
	if s.stepSystem != nil {
		hints = append(hints, "W E D C X Z A Q move, Up/Down elevation")
	}
	if s.hoverSystem != nil {
		lines = append(lines, fmt.Sprintf("%s  picking=%s", s.Phase(), s.strategy))
		if s.toggleSystem != nil {
			hints = append(hints, "hold Left-Shift + click a tile")
		} else {
			hints = append(hints, "tap a tile")
		}
	}
	lines = append(lines, strings.Join(hints, " | "))
	lines = append(lines, "F2 copy report  F3 strategy  F4 coords  F5 variant  F11 fullscreen")
	return lines
}

// Phase 返回移动 UI 状态机的当前阶段
func (s *GridScene) Phase() game.Phase {
	hovering := s.picker != nil && s.picker.Hovered() != 0
	return game.PhaseOf(s.ui, hovering)
}

// MovementUI 返回移动 UI 状态
func (s *GridScene) MovementUI() *game.MovementUIState {
	return s.ui
}

// EntityManager 返回场景的实体管理器
func (s *GridScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Projection 返回最近一个 tick 使用的投影
func (s *GridScene) Projection() utils.Projection {
	return s.lastProjection
}

// PlayerPosition 返回玩家位置
func (s *GridScene) PlayerPosition() (components.Vec3, bool) {
	_, player, ok := entities.FindPlayer(s.entityManager)
	if !ok {
		return components.Vec3{}, false
	}
	return player.Position, true
}

// PickingStrategy 返回当前拾取策略
func (s *GridScene) PickingStrategy() string {
	return s.strategy
}

// SetPickingStrategy 运行时切换拾取策略
// 未启用拾取控制的变体只记录策略名
func (s *GridScene) SetPickingStrategy(name string) error {
	hoverStrategy, err := systems.NewHoverStrategy(name)
	if err != nil {
		return err
	}
	s.strategy = name
	if s.hoverSystem != nil {
		s.hoverSystem.SetStrategy(hoverStrategy)
		s.tilePickSystem.SetStrategy(name)
	}
	return nil
}

// ToggleCoordinates 切换格子坐标显示，返回切换后的状态
func (s *GridScene) ToggleCoordinates() bool {
	s.renderSystem.ShowCoordinates = !s.renderSystem.ShowCoordinates
	return s.renderSystem.ShowCoordinates
}

// StatusReport 实现 game.Reporter 接口
func (s *GridScene) StatusReport() string {
	snap := game.StatusSnapshot{
		Variant:         s.variantName,
		PickingStrategy: s.strategy,
		HalfExtent:      s.variant.BoardHalfExtent,
		GroundElevation: s.variant.GroundElevation,
		MaxElevation:    s.variant.MaxElevation,
		Tick:            s.tickCount,
		UIEnabled:       s.ui.Enabled,
		Phase:           s.Phase(),
	}
	snap.PlayerPosition, snap.HasPlayer = s.PlayerPosition()

	for _, id := range entities.HoverIndicators(s.entityManager) {
		if pos, ok := s.indicatorPosition(id); ok {
			snap.Indicators = append(snap.Indicators, pos)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.GridTileComponent](s.entityManager) {
		tile, _ := ecs.GetComponent[*components.GridTileComponent](s.entityManager, id)
		if tile.Selected {
			snap.SelectedTiles = append(snap.SelectedTiles, [2]int{tile.Col, tile.Row})
		}
	}
	return game.FormatStatusReport(snap)
}

// indicatorPosition 返回指示器实体的位置
func (s *GridScene) indicatorPosition(id ecs.EntityID) (components.Vec3, bool) {
	t, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return components.Vec3{}, false
	}
	return t.Position, true
}
