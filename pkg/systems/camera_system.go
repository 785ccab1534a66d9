package systems

import (
	"math"

	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/config"
	"github.com/decker502/gridwalk/pkg/ecs"
	"github.com/decker502/gridwalk/pkg/utils"
)

// CameraSystem 处理镜头的平移、缩放和跟随
//
// 右键拖拽平移，滚轮缩放（限制在 [CameraMinZoom, CameraMaxZoom]）。
// 跟随玩家时，玩家始终位于屏幕中心（叠加平移量）。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
}

// NewCameraSystem 创建镜头系统
func NewCameraSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
	}
}

// camera 返回镜头组件，不存在时返回 nil
func (s *CameraSystem) camera() *components.CameraComponent {
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	if !ok {
		return nil
	}
	return cam
}

// Update 根据指针状态更新镜头
func (s *CameraSystem) Update(pointer utils.PointerState) {
	cam := s.camera()
	if cam == nil || !pointer.Valid {
		return
	}

	if pointer.DragHeld {
		if cam.Dragging {
			cam.PanX += float64(pointer.X - cam.LastDragX)
			cam.PanY += float64(pointer.Y - cam.LastDragY)
		}
		cam.Dragging = true
		cam.LastDragX, cam.LastDragY = pointer.X, pointer.Y
	} else {
		cam.Dragging = false
	}

	if pointer.WheelY != 0 {
		cam.Zoom = clampZoom(cam.Zoom + pointer.WheelY*config.CameraZoomStep)
	}
}

// clampZoom 把缩放限制在允许范围内
func clampZoom(z float64) float64 {
	return math.Max(config.CameraMinZoom, math.Min(config.CameraMaxZoom, z))
}

// Projection 返回当前镜头对应的投影
// focus 为跟随目标（玩家位置），为 nil 或镜头不跟随时以世界原点为中心
func (s *CameraSystem) Projection(focus *components.Vec3) utils.Projection {
	cam := s.camera()
	if cam == nil {
		return utils.NewProjection(config.BoardOriginX, config.BoardOriginY, 1)
	}

	proj := utils.NewProjection(config.BoardOriginX+cam.PanX, config.BoardOriginY+cam.PanY, cam.Zoom)
	if cam.FollowPlayer && focus != nil {
		fx, fy := proj.WorldToScreen(focus.X, focus.Y, focus.Z)
		proj.OriginX -= fx - (config.BoardOriginX + cam.PanX)
		proj.OriginY -= fy - (config.BoardOriginY + cam.PanY)
	}
	return proj
}
