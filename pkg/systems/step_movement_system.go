package systems

import (
	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/ecs"
	"github.com/decker502/gridwalk/pkg/entities"
	"github.com/decker502/gridwalk/pkg/utils"
)

// stepRule 一个水平方向键的移动规则
//
// reachEdgeX / reachEdgeZ 为 true 时，该轴的负方向下限放宽到 -B，
// 所以 -B 那一行/列只能通过 D、A 两个键到达。
type stepRule struct {
	key        utils.Key
	dx, dz     int
	reachEdgeX bool
	reachEdgeZ bool
}

// horizontalRules 水平方向键，按处理顺序排列
var horizontalRules = []stepRule{
	{key: utils.KeyW, dx: -1, dz: -1},
	{key: utils.KeyE, dx: 0, dz: -1},
	{key: utils.KeyD, dx: +1, dz: -1, reachEdgeZ: true},
	{key: utils.KeyC, dx: +1, dz: 0},
	{key: utils.KeyX, dx: +1, dz: +1},
	{key: utils.KeyZ, dx: 0, dz: +1},
	{key: utils.KeyA, dx: -1, dz: +1, reachEdgeX: true},
	{key: utils.KeyQ, dx: -1, dz: 0},
}

// canStep 检查单轴步进是否在边界内
// 正方向上限为 B-1；负方向下限为 -B+1，reachEdge 时为 -B
func canStep(cur float64, d int, halfExtent int, reachEdge bool) bool {
	b := float64(halfExtent)
	switch {
	case d > 0:
		return cur < b-1
	case d < 0:
		if reachEdge {
			return cur > -b
		}
		return cur > -b+1
	}
	return false
}

// StepMovementSystem 键盘逐格移动玩家
//
// 每个按下的方向键独立地作用在同一个工作副本上（增量按键累加，
// 不合并成一次斜向检查），每个轴单独做边界检查。
// 本 tick 所有按键处理完后，位置有变化才写回一次。
type StepMovementSystem struct {
	entityManager *ecs.EntityManager
	halfExtent    int
	ground        float64
	maxElevation  float64

	// yieldToUI 为 true 时，移动 UI 开启期间不处理按键（两种控制方式互斥）
	yieldToUI bool
}

// NewStepMovementSystem 创建逐格移动系统
// 参数:
//   - em: EntityManager 实例
//   - halfExtent: 棋盘半宽 B
//   - ground, maxElevation: 垂直移动范围
//   - yieldToUI: 移动 UI 开启时是否让出控制
func NewStepMovementSystem(em *ecs.EntityManager, halfExtent int, ground, maxElevation float64, yieldToUI bool) *StepMovementSystem {
	return &StepMovementSystem{
		entityManager: em,
		halfExtent:    halfExtent,
		ground:        ground,
		maxElevation:  maxElevation,
		yieldToUI:     yieldToUI,
	}
}

// Update 处理本 tick 的按键
// 返回玩家位置是否发生变化
func (s *StepMovementSystem) Update(ctx *TickContext) bool {
	if s.yieldToUI && ctx.UI.Enabled {
		return false
	}
	if ctx.Keys.Empty() {
		return false
	}

	_, player, ok := entities.FindPlayer(s.entityManager)
	if !ok {
		return false
	}

	next := s.Step(player.Position, ctx.Keys)
	if next == player.Position {
		return false
	}
	player.Position = next
	return true
}

// Step 计算按键作用后的新位置（不修改实体）
func (s *StepMovementSystem) Step(pos components.Vec3, keys utils.KeySnapshot) components.Vec3 {
	for _, r := range horizontalRules {
		if !keys.JustPressed(r.key) {
			continue
		}
		if r.dx != 0 && canStep(pos.X, r.dx, s.halfExtent, r.reachEdgeX) {
			pos.X += float64(r.dx)
		}
		if r.dz != 0 && canStep(pos.Z, r.dz, s.halfExtent, r.reachEdgeZ) {
			pos.Z += float64(r.dz)
		}
	}

	if keys.JustPressed(utils.KeyUp) && pos.Y+1 <= s.maxElevation {
		pos.Y++
	}
	if keys.JustPressed(utils.KeyDown) && pos.Y-1 >= s.ground {
		pos.Y--
	}
	return pos
}
