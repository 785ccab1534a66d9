package systems

import (
	"fmt"
	"log"

	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/config"
	"github.com/decker502/gridwalk/pkg/ecs"
	"github.com/decker502/gridwalk/pkg/entities"
	"github.com/decker502/gridwalk/pkg/picking"
)

// HoverStrategy 悬停指示器的维护策略
type HoverStrategy interface {
	// Name 策略名（与配置中的 pickingStrategy 一致）
	Name() string
	// Reconcile 在 UI 开启时根据本 tick 的输入调整指示器
	Reconcile(em *ecs.EntityManager, ctx *TickContext)
}

// NewHoverStrategy 根据配置名创建策略
func NewHoverStrategy(name string) (HoverStrategy, error) {
	switch name {
	case config.PickingEvents:
		return EventHoverStrategy{}, nil
	case config.PickingPoll:
		return PollHoverStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown hover strategy '%s'", name)
}

// EventHoverStrategy 基于悬停进入/离开事件维护指示器
//
// 进入：在格子处生成一个指示器。
// 离开：移除所有水平坐标与该格子相同的指示器（按坐标匹配，不按实体）。
// 因此重复的进入事件会暂时留下多个指示器，离开时一并清理。
type EventHoverStrategy struct{}

// Name 实现 HoverStrategy 接口
func (EventHoverStrategy) Name() string { return config.PickingEvents }

// Reconcile 实现 HoverStrategy 接口
func (EventHoverStrategy) Reconcile(em *ecs.EntityManager, ctx *TickContext) {
	for _, e := range ctx.Events {
		if !e.IsHover() {
			continue
		}
		tile, ok := ecs.GetComponent[*components.TransformComponent](em, e.Tile)
		if !ok {
			continue
		}

		switch e.Hover {
		case picking.HoverEntered:
			entities.NewHoverIndicatorEntity(em, tile.Position)
		case picking.HoverLeft:
			despawnIndicatorsWhere(em, func(p components.Vec3) bool {
				return p.SameHorizontal(tile.Position)
			})
		}
	}
}

// PollHoverStrategy 每个 tick 直接查询指针下的格子
//
// 确保当前悬停格子处有指示器，并移除其余所有指示器；
// 指针不在任何格子上时移除全部指示器。
type PollHoverStrategy struct{}

// Name 实现 HoverStrategy 接口
func (PollHoverStrategy) Name() string { return config.PickingPoll }

// Reconcile 实现 HoverStrategy 接口
func (PollHoverStrategy) Reconcile(em *ecs.EntityManager, ctx *TickContext) {
	hit, ok := ctx.Picker.TopIntersection()
	if !ok {
		despawnAllIndicators(em)
		return
	}

	target := hit.Position.Rounded()
	present := false
	for _, id := range entities.HoverIndicators(em) {
		t, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if t.Position.SameHorizontal(target) && !present {
			present = true
			continue
		}
		em.DestroyEntity(id)
	}
	if !present {
		entities.NewHoverIndicatorEntity(em, hit.Position)
	}
}

// HoverIndicatorSystem 在移动 UI 开启时维护悬停指示器
type HoverIndicatorSystem struct {
	entityManager *ecs.EntityManager
	strategy      HoverStrategy
}

// NewHoverIndicatorSystem 创建悬停指示器系统
// strategy 为 nil 时使用事件驱动策略
func NewHoverIndicatorSystem(em *ecs.EntityManager, strategy HoverStrategy) *HoverIndicatorSystem {
	if strategy == nil {
		strategy = EventHoverStrategy{}
	}
	return &HoverIndicatorSystem{
		entityManager: em,
		strategy:      strategy,
	}
}

// Strategy 返回当前策略
func (s *HoverIndicatorSystem) Strategy() HoverStrategy {
	return s.strategy
}

// SetStrategy 运行时切换策略
func (s *HoverIndicatorSystem) SetStrategy(strategy HoverStrategy) {
	if strategy == nil {
		return
	}
	log.Printf("[HoverIndicatorSystem] 切换悬停策略: %s -> %s", s.strategy.Name(), strategy.Name())
	s.strategy = strategy
}

// Update UI 关闭时不做任何事（残留指示器由 IndicatorCleanupSystem 清理）
func (s *HoverIndicatorSystem) Update(ctx *TickContext) {
	if !ctx.UI.Enabled {
		return
	}
	s.strategy.Reconcile(s.entityManager, ctx)
}

// IndicatorCleanupSystem UI 关闭时每个 tick 清理残留的指示器
type IndicatorCleanupSystem struct {
	entityManager *ecs.EntityManager
}

// NewIndicatorCleanupSystem 创建指示器清理系统
func NewIndicatorCleanupSystem(em *ecs.EntityManager) *IndicatorCleanupSystem {
	return &IndicatorCleanupSystem{entityManager: em}
}

// Update 返回本 tick 移除的指示器数量
func (s *IndicatorCleanupSystem) Update(ctx *TickContext) int {
	if ctx.UI.Enabled {
		return 0
	}
	return despawnAllIndicators(s.entityManager)
}

// despawnAllIndicators 移除所有悬停指示器，返回移除数量
func despawnAllIndicators(em *ecs.EntityManager) int {
	return despawnIndicatorsWhere(em, func(components.Vec3) bool { return true })
}

// despawnIndicatorsWhere 移除坐标满足条件的指示器，返回移除数量
func despawnIndicatorsWhere(em *ecs.EntityManager, match func(components.Vec3) bool) int {
	removed := 0
	for _, id := range entities.HoverIndicators(em) {
		t, ok := ecs.GetComponent[*components.TransformComponent](em, id)
		if !ok || !match(t.Position) {
			continue
		}
		if em.DestroyEntity(id) {
			removed++
		}
	}
	return removed
}
