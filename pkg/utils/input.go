// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key 游戏识别的按键
// 按键绑定是固定的外部约定，不可配置
type Key int

const (
	KeyW Key = iota
	KeyE
	KeyD
	KeyC
	KeyX
	KeyZ
	KeyA
	KeyQ
	KeyUp
	KeyDown
	KeyLeftShift
	keyCount
)

// keyBindings 游戏按键到 ebiten 按键的映射
var keyBindings = [keyCount]ebiten.Key{
	KeyW:         ebiten.KeyW,
	KeyE:         ebiten.KeyE,
	KeyD:         ebiten.KeyD,
	KeyC:         ebiten.KeyC,
	KeyX:         ebiten.KeyX,
	KeyZ:         ebiten.KeyZ,
	KeyA:         ebiten.KeyA,
	KeyQ:         ebiten.KeyQ,
	KeyUp:        ebiten.KeyArrowUp,
	KeyDown:      ebiten.KeyArrowDown,
	KeyLeftShift: ebiten.KeyShiftLeft,
}

// String 返回按键名称
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyE:
		return "E"
	case KeyD:
		return "D"
	case KeyC:
		return "C"
	case KeyX:
		return "X"
	case KeyZ:
		return "Z"
	case KeyA:
		return "A"
	case KeyQ:
		return "Q"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeftShift:
		return "LeftShift"
	}
	return "Unknown"
}

// KeySnapshot 存储本 tick 内发生跳变的按键
// 只记录边沿（刚按下 / 刚松开），不记录按住状态
type KeySnapshot struct {
	pressed  [keyCount]bool
	released [keyCount]bool
}

// NewKeySnapshot 根据按下和松开的按键列表构造快照
// 超出范围的按键会被忽略
func NewKeySnapshot(pressed, released []Key) KeySnapshot {
	var s KeySnapshot
	for _, k := range pressed {
		if k >= 0 && k < keyCount {
			s.pressed[k] = true
		}
	}
	for _, k := range released {
		if k >= 0 && k < keyCount {
			s.released[k] = true
		}
	}
	return s
}

// JustPressed 本 tick 内按键是否刚按下
func (s KeySnapshot) JustPressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.pressed[k]
}

// JustReleased 本 tick 内按键是否刚松开
func (s KeySnapshot) JustReleased(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.released[k]
}

// Empty 本 tick 内是否没有任何按键跳变
func (s KeySnapshot) Empty() bool {
	for k := Key(0); k < keyCount; k++ {
		if s.pressed[k] || s.released[k] {
			return false
		}
	}
	return true
}

// PointerState 存储当前帧的指针状态
type PointerState struct {
	// X, Y 指针屏幕坐标
	X, Y int
	// JustPressed 左键/触摸是否刚按下（选中格子）
	JustPressed bool
	// DragHeld 右键是否按住（镜头平移）
	DragHeld bool
	// WheelY 滚轮增量（镜头缩放）
	WheelY float64
	// Valid 指针是否可用（headless 模式下为 false）
	Valid bool
}

// FrameInput 一个 tick 的全部输入
type FrameInput struct {
	Keys    KeySnapshot
	Pointer PointerState
}

// CaptureFrameInput 从 ebiten 读取本 tick 的输入
// 必须在 ebiten 的 Update 中调用
func CaptureFrameInput() FrameInput {
	var pressed, released []Key
	for k := Key(0); k < keyCount; k++ {
		if inpututil.IsKeyJustPressed(keyBindings[k]) {
			pressed = append(pressed, k)
		}
		if inpututil.IsKeyJustReleased(keyBindings[k]) {
			released = append(released, k)
		}
	}

	pointer := PointerState{Valid: true}
	_, pointer.WheelY = ebiten.Wheel()
	pointer.DragHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	// 首先检查触摸输入（移动设备）
	// 按住中的触摸只更新指针位置，用于悬停
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		pointer.JustPressed = true
		pointer.X, pointer.Y = ebiten.TouchPosition(touchIDs[0])
	} else if heldIDs := ebiten.AppendTouchIDs(nil); len(heldIDs) > 0 {
		pointer.X, pointer.Y = ebiten.TouchPosition(heldIDs[0])
	} else {
		pointer.X, pointer.Y = ebiten.CursorPosition()
		pointer.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}

	return FrameInput{
		Keys:    NewKeySnapshot(pressed, released),
		Pointer: pointer,
	}
}
