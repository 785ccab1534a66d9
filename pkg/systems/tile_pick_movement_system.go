package systems

import (
	"log"

	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/config"
	"github.com/decker502/gridwalk/pkg/ecs"
	"github.com/decker502/gridwalk/pkg/entities"
)

// TilePickMovementSystem 把玩家移动到被选中的格子上
//
// 只在移动 UI 开启时生效，只消费"刚被选中"事件。
// 目标格子的定位方式取决于拾取策略：
//   - events: 扫描所有格子，找到第一个带选中标记的格子
//   - poll: 直接询问拾取器指针下的格子
//
// 两种方式都会在消费后清除事件中格子的选中标记（选中是一次性信号）。
type TilePickMovementSystem struct {
	entityManager *ecs.EntityManager
	seated        float64
	queryPicker   bool
}

// NewTilePickMovementSystem 创建拾取移动系统
// 参数:
//   - em: EntityManager 实例
//   - seatedElevation: 玩家落在格子上的高度（地面 + 0.5）
//   - strategy: 拾取策略（config.PickingEvents 或 config.PickingPoll）
func NewTilePickMovementSystem(em *ecs.EntityManager, seatedElevation float64, strategy string) *TilePickMovementSystem {
	return &TilePickMovementSystem{
		entityManager: em,
		seated:        seatedElevation,
		queryPicker:   strategy == config.PickingPoll,
	}
}

// SetStrategy 运行时切换目标格子的定位方式
func (s *TilePickMovementSystem) SetStrategy(strategy string) {
	s.queryPicker = strategy == config.PickingPoll
}

// Update 处理本 tick 的选中事件
// 返回玩家是否被移动
func (s *TilePickMovementSystem) Update(ctx *TickContext) bool {
	if !ctx.UI.Enabled {
		return false
	}

	_, player, ok := entities.FindPlayer(s.entityManager)
	if !ok {
		return false
	}

	moved := false
	for _, e := range ctx.Events {
		if !e.IsJustSelected() {
			continue
		}

		var target components.Vec3
		var found bool
		if s.queryPicker {
			target, found = s.pickerTarget(ctx)
			s.clearSelected(e.Tile)
		} else {
			target, found = s.flaggedTarget()
		}
		if !found {
			continue
		}

		player.Position = components.Vec3{X: target.X, Y: s.seated, Z: target.Z}
		moved = true
		log.Printf("[TilePickMovementSystem] 玩家移动到格子 (%.0f, %.0f)", target.X, target.Z)
	}
	return moved
}

// pickerTarget 查询拾取器指针下的格子
func (s *TilePickMovementSystem) pickerTarget(ctx *TickContext) (components.Vec3, bool) {
	hit, ok := ctx.Picker.TopIntersection()
	if !ok {
		return components.Vec3{}, false
	}
	return hit.Position, true
}

// flaggedTarget 找到第一个带选中标记的格子，返回其位置并清除标记
func (s *TilePickMovementSystem) flaggedTarget() (components.Vec3, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.GridTileComponent, *components.TransformComponent](s.entityManager) {
		tile, _ := ecs.GetComponent[*components.GridTileComponent](s.entityManager, id)
		if !tile.Selected {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		tile.Selected = false
		return transform.Position, true
	}
	return components.Vec3{}, false
}

func (s *TilePickMovementSystem) clearSelected(id ecs.EntityID) {
	if tile, ok := ecs.GetComponent[*components.GridTileComponent](s.entityManager, id); ok {
		tile.Selected = false
	}
}
