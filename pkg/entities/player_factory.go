package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/ecs"
)

// PlayerColor 玩家方块颜色
var PlayerColor = color.RGBA{R: 51, G: 51, B: 255, A: 255}

// NewPlayerEntity 创建玩家实体
// 玩家是边长为 1 的蓝色方块，初始位于原点上方 elevation 处
//
// 参数:
//   - em: 实体管理器
//   - elevation: 初始高度
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID
//   - error: em 为 nil 时返回错误
func NewPlayerEntity(em *ecs.EntityManager, elevation float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PlayerComponent{})
	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Position: components.Vec3{X: 0, Y: elevation, Z: 0},
	})
	ecs.AddComponent(em, entityID, &components.VisualComponent{
		Shape: components.ShapeCube,
		Size:  1.0,
		Color: PlayerColor,
		Layer: 2,
	})
	return entityID, nil
}

// FindPlayer 查找玩家实体及其坐标组件
// 没有玩家时 ok 为 false
func FindPlayer(em *ecs.EntityManager) (ecs.EntityID, *components.TransformComponent, bool) {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.TransformComponent](em)
	if len(ids) == 0 {
		return 0, nil, false
	}
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, ids[0])
	return ids[0], transform, true
}
