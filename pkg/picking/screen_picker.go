package picking

import (
	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/ecs"
	"github.com/decker502/gridwalk/pkg/utils"
)

// tileKey 格子坐标索引键
type tileKey struct {
	col, row int
}

// ScreenPicker 基于等距投影的拾取实现
//
// 每个 tick 把指针屏幕坐标反投影到地面，吸附到最近的格子，
// 与上一 tick 的悬停格子比较后产生进入/离开事件；
// 左键按下时设置格子的 Selected 标记并产生选中事件。
type ScreenPicker struct {
	entityManager *ecs.EntityManager
	halfExtent    int
	ground        float64

	// 格子坐标 -> 格子实体
	tiles map[tileKey]ecs.EntityID

	hovered  ecs.EntityID
	selected ecs.EntityID
}

// NewScreenPicker 创建拾取器并为现有格子实体建立索引
// 参数:
//   - em: EntityManager 实例
//   - halfExtent: 棋盘半宽 B
//   - ground: 格子表面高度
func NewScreenPicker(em *ecs.EntityManager, halfExtent int, ground float64) *ScreenPicker {
	p := &ScreenPicker{
		entityManager: em,
		halfExtent:    halfExtent,
		ground:        ground,
		tiles:         make(map[tileKey]ecs.EntityID),
	}
	p.Reindex()
	return p
}

// Reindex 重新扫描格子实体
func (p *ScreenPicker) Reindex() {
	p.tiles = make(map[tileKey]ecs.EntityID)
	for _, id := range ecs.GetEntitiesWith1[*components.GridTileComponent](p.entityManager) {
		tile, _ := ecs.GetComponent[*components.GridTileComponent](p.entityManager, id)
		p.tiles[tileKey{tile.Col, tile.Row}] = id
	}
}

// TileAt 根据格子坐标查找格子实体
func (p *ScreenPicker) TileAt(col, row int) (ecs.EntityID, bool) {
	id, ok := p.tiles[tileKey{col, row}]
	return id, ok
}

// Hovered 返回当前悬停的格子实体（0 表示没有）
func (p *ScreenPicker) Hovered() ecs.EntityID {
	return p.hovered
}

// Update 根据本 tick 的指针状态更新悬停/选中，并把事件写入 queue
func (p *ScreenPicker) Update(pointer utils.PointerState, proj utils.Projection, queue *Queue) {
	var current ecs.EntityID
	if pointer.Valid {
		if col, row, ok := proj.ScreenToTile(float64(pointer.X), float64(pointer.Y), p.ground, p.halfExtent); ok {
			current, _ = p.TileAt(col, row)
		}
	}
	if current != 0 && !p.entityManager.Exists(current) {
		current = 0
	}

	if current != p.hovered {
		if p.hovered != 0 {
			queue.Push(NewHoverEvent(p.hovered, HoverLeft))
		}
		if current != 0 {
			queue.Push(NewHoverEvent(current, HoverEntered))
		}
		p.hovered = current
	}

	if pointer.JustPressed && current != 0 {
		p.selectTile(current, queue)
	}
}

// selectTile 选中格子；之前选中且仍带标记的格子会被取消选中
func (p *ScreenPicker) selectTile(id ecs.EntityID, queue *Queue) {
	tile, ok := ecs.GetComponent[*components.GridTileComponent](p.entityManager, id)
	if !ok || tile.Selected {
		return
	}

	if p.selected != 0 && p.selected != id {
		if prev, ok := ecs.GetComponent[*components.GridTileComponent](p.entityManager, p.selected); ok && prev.Selected {
			prev.Selected = false
			queue.Push(NewSelectionEvent(p.selected, JustDeselected))
		}
	}

	tile.Selected = true
	p.selected = id
	queue.Push(NewSelectionEvent(id, JustSelected))
}

// TopIntersection 实现 Picker 接口，返回当前悬停格子的位置
func (p *ScreenPicker) TopIntersection() (Hit, bool) {
	if p.hovered == 0 {
		return Hit{}, false
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](p.entityManager, p.hovered)
	if !ok {
		return Hit{}, false
	}
	return Hit{Tile: p.hovered, Position: transform.Position}, true
}
