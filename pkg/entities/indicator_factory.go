package entities

import (
	"image/color"

	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/ecs"
)

// IndicatorColor 悬停指示器颜色
var IndicatorColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// IndicatorSize 悬停指示器边长（世界单位）
const IndicatorSize = 0.2

// NewHoverIndicatorEntity 在格子坐标处创建悬停指示器
// 指示器的三个坐标都四舍五入到最近的整数
func NewHoverIndicatorEntity(em *ecs.EntityManager, at components.Vec3) ecs.EntityID {
	pos := at.Rounded()

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.HoverIndicatorComponent{
		Col: int(pos.X),
		Row: int(pos.Z),
	})
	ecs.AddComponent(em, entityID, &components.TransformComponent{Position: pos})
	ecs.AddComponent(em, entityID, &components.VisualComponent{
		Shape: components.ShapeCube,
		Size:  IndicatorSize,
		Color: IndicatorColor,
		Layer: 1,
	})
	return entityID
}

// HoverIndicators 返回所有悬停指示器实体（不含已标记删除的）
func HoverIndicators(em *ecs.EntityManager) []ecs.EntityID {
	all := ecs.GetEntitiesWith2[*components.HoverIndicatorComponent, *components.TransformComponent](em)
	alive := all[:0]
	for _, id := range all {
		if !em.IsMarkedForDestroy(id) {
			alive = append(alive, id)
		}
	}
	return alive
}
