package systems

import (
	"testing"

	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/ecs"
	"github.com/decker502/gridwalk/pkg/entities"
	"github.com/decker502/gridwalk/pkg/game"
	"github.com/decker502/gridwalk/pkg/picking"
	"github.com/decker502/gridwalk/pkg/utils"
)

// fakePicker 返回固定结果的拾取器
type fakePicker struct {
	hit picking.Hit
	ok  bool
}

func (p *fakePicker) TopIntersection() (picking.Hit, bool) {
	return p.hit, p.ok
}

// pickerOver 返回命中指定格子的拾取器
func pickerOver(t *testing.T, em *ecs.EntityManager, tile ecs.EntityID) *fakePicker {
	t.Helper()
	transform, ok := ecs.GetComponent[*components.TransformComponent](em, tile)
	if !ok {
		t.Fatalf("tile %d has no transform", tile)
	}
	return &fakePicker{hit: picking.Hit{Tile: tile, Position: transform.Position}, ok: true}
}

// newTestWorld 创建带棋盘和玩家的世界
// 返回格子坐标 -> 实体的查找函数
func newTestWorld(t *testing.T, halfExtent int, ground, start float64) (*ecs.EntityManager, func(col, row int) ecs.EntityID) {
	t.Helper()
	em := ecs.NewEntityManager()
	if _, err := entities.NewGrid(em, halfExtent, ground); err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if _, err := entities.NewPlayerEntity(em, start); err != nil {
		t.Fatalf("NewPlayerEntity failed: %v", err)
	}

	index := make(map[[2]int]ecs.EntityID)
	for _, id := range ecs.GetEntitiesWith1[*components.GridTileComponent](em) {
		tile, _ := ecs.GetComponent[*components.GridTileComponent](em, id)
		index[[2]int{tile.Col, tile.Row}] = id
	}
	return em, func(col, row int) ecs.EntityID {
		id, ok := index[[2]int{col, row}]
		if !ok {
			t.Fatalf("no tile at (%d, %d)", col, row)
		}
		return id
	}
}

// tick 构造 tick 上下文
func tick(keys utils.KeySnapshot, events []picking.Event, picker picking.Picker, ui *game.MovementUIState) *TickContext {
	return NewTickContext(keys, events, picker, ui)
}

// pressed 只有按下边沿的按键快照
func pressed(keys ...utils.Key) utils.KeySnapshot {
	return utils.NewKeySnapshot(keys, nil)
}

// released 只有松开边沿的按键快照
func released(keys ...utils.Key) utils.KeySnapshot {
	return utils.NewKeySnapshot(nil, keys)
}

// indicatorPositions 返回所有存活指示器的位置
func indicatorPositions(em *ecs.EntityManager) []components.Vec3 {
	var out []components.Vec3
	for _, id := range entities.HoverIndicators(em) {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		out = append(out, transform.Position)
	}
	return out
}

func playerPosition(t *testing.T, em *ecs.EntityManager) components.Vec3 {
	t.Helper()
	_, transform, ok := entities.FindPlayer(em)
	if !ok {
		t.Fatal("player not found")
	}
	return transform.Position
}

func spawnIndicator(em *ecs.EntityManager, at components.Vec3) ecs.EntityID {
	return entities.NewHoverIndicatorEntity(em, at)
}
