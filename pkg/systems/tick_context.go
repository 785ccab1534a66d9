package systems

import (
	"github.com/decker502/gridwalk/pkg/game"
	"github.com/decker502/gridwalk/pkg/picking"
	"github.com/decker502/gridwalk/pkg/utils"
)

// TickContext 一个 tick 内各移动系统共享的输入和状态
//
// 由场景每个 tick 构造一次，按固定顺序传给各系统：
// 开关 -> 悬停指示器 -> 清理 -> 拾取移动 -> 逐格移动
type TickContext struct {
	// Keys 本 tick 的按键跳变
	Keys utils.KeySnapshot

	// Events 本 tick 的拾取事件（已从队列取出）
	// 悬停事件只由 HoverIndicatorSystem 消费，选中事件只由 TilePickMovementSystem 消费
	Events []picking.Event

	// Picker 按需查询指针下的格子
	Picker picking.Picker

	// UI 移动 UI 开关状态
	UI *game.MovementUIState
}

// NewTickContext 创建 tick 上下文，picker 为 nil 时使用 picking.NoPicker
func NewTickContext(keys utils.KeySnapshot, events []picking.Event, picker picking.Picker, ui *game.MovementUIState) *TickContext {
	if picker == nil {
		picker = picking.NoPicker{}
	}
	if ui == nil {
		ui = game.NewMovementUIState()
	}
	return &TickContext{
		Keys:   keys,
		Events: events,
		Picker: picker,
		UI:     ui,
	}
}
