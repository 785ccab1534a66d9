package systems

import (
	"log"

	"github.com/decker502/gridwalk/pkg/ecs"
	"github.com/decker502/gridwalk/pkg/entities"
	"github.com/decker502/gridwalk/pkg/utils"
)

// MovementUIToggleSystem 处理移动 UI 的开关
//
// Left-Shift 按下（且当前关闭）时开启，并立即在指针下的格子处生成指示器；
// Left-Shift 松开（且当前开启）时关闭，并移除所有指示器。
// 边沿与当前状态不匹配时不做任何事。
type MovementUIToggleSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementUIToggleSystem 创建移动 UI 开关系统
func NewMovementUIToggleSystem(em *ecs.EntityManager) *MovementUIToggleSystem {
	return &MovementUIToggleSystem{entityManager: em}
}

// Update 处理本 tick 的 Left-Shift 边沿
// 返回本 tick 是否发生了状态翻转
func (s *MovementUIToggleSystem) Update(ctx *TickContext) bool {
	if ctx.Keys.JustPressed(utils.KeyLeftShift) && !ctx.UI.Enabled {
		log.Printf("[MovementUIToggleSystem] Left-Shift Pressed - Enabling Movement UI.")
		ctx.UI.Enabled = true

		if hit, ok := ctx.Picker.TopIntersection(); ok {
			entities.NewHoverIndicatorEntity(s.entityManager, hit.Position)
		}
		return true
	} else if ctx.Keys.JustReleased(utils.KeyLeftShift) && ctx.UI.Enabled {
		log.Printf("[MovementUIToggleSystem] Left-Shift Released - Disabling Movement UI.")
		ctx.UI.Enabled = false
		despawnAllIndicators(s.entityManager)
		return true
	}
	return false
}
