package game

// MovementUIState 移动 UI 开关状态
//
// 初始为关闭。由开关系统在 Left-Shift 按下/松开的边沿翻转，
// 作为显式状态随 tick 传入各系统，而不是全局变量。
type MovementUIState struct {
	Enabled bool
}

// NewMovementUIState 创建关闭状态的移动 UI
func NewMovementUIState() *MovementUIState {
	return &MovementUIState{Enabled: false}
}

// Phase 移动 UI 状态机的当前阶段
type Phase int

const (
	// PhaseDisabled UI 关闭
	PhaseDisabled Phase = iota
	// PhaseEnabledIdle UI 开启，指针不在格子上
	PhaseEnabledIdle
	// PhaseEnabledHovering UI 开启，指针悬停在某个格子上
	PhaseEnabledHovering
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseDisabled:
		return "UI_DISABLED"
	case PhaseEnabledIdle:
		return "UI_ENABLED_IDLE"
	case PhaseEnabledHovering:
		return "UI_ENABLED_HOVERING"
	}
	return "UNKNOWN"
}

// PhaseOf 根据开关状态和当前是否悬停推导阶段
func PhaseOf(ui *MovementUIState, hovering bool) Phase {
	if ui == nil || !ui.Enabled {
		return PhaseDisabled
	}
	if hovering {
		return PhaseEnabledHovering
	}
	return PhaseEnabledIdle
}
