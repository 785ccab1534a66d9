package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/ecs"
)

// 棋盘格颜色
var (
	TileDarkColor  = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	TileLightColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// NewGridTileEntity 创建一个格子实体
// 格子中心位于世界坐标 (col, elevation, row)
func NewGridTileEntity(em *ecs.EntityManager, col, row int, elevation float64) ecs.EntityID {
	c := TileLightColor
	if (col+row)%2 != 0 {
		c = TileDarkColor
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.GridTileComponent{Col: col, Row: row})
	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Position: components.Vec3{X: float64(col), Y: elevation, Z: float64(row)},
	})
	ecs.AddComponent(em, entityID, &components.VisualComponent{
		Shape: components.ShapeTile,
		Size:  1.0,
		Color: c,
		Layer: 0,
	})
	return entityID
}

// NewGrid 创建 2B x 2B 的棋盘格，格子坐标范围 [-B, B-1]
//
// 参数:
//   - em: 实体管理器
//   - halfExtent: 棋盘半宽 B
//   - elevation: 格子表面高度
//
// 返回:
//   - []ecs.EntityID: 按行优先顺序创建的格子实体
//   - error: 参数无效时返回错误
func NewGrid(em *ecs.EntityManager, halfExtent int, elevation float64) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if halfExtent < 1 {
		return nil, fmt.Errorf("invalid half extent %d, must be >= 1", halfExtent)
	}

	ids := make([]ecs.EntityID, 0, 4*halfExtent*halfExtent)
	for row := -halfExtent; row < halfExtent; row++ {
		for col := -halfExtent; col < halfExtent; col++ {
			ids = append(ids, NewGridTileEntity(em, col, row, elevation))
		}
	}
	return ids, nil
}
