package entities

import (
	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/ecs"
)

// NewCameraEntity 创建镜头实体
// followPlayer 为 true 时镜头以玩家为中心（镜头是玩家的子节点）
func NewCameraEntity(em *ecs.EntityManager, followPlayer bool) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.CameraComponent{
		Zoom:         1.0,
		FollowPlayer: followPlayer,
	})
	return entityID
}
