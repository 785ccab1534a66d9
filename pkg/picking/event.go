// Package picking 定义拾取协作方的接口：悬停/选中事件和"指针下是哪个格子"的查询。
package picking

import "github.com/decker502/gridwalk/pkg/ecs"

// EventKind 事件类别
type EventKind int

const (
	// EventHover 悬停事件，由悬停指示器系统消费
	EventHover EventKind = iota
	// EventSelection 选中事件，由拾取移动系统消费
	EventSelection
)

// HoverKind 悬停事件子类型
type HoverKind int

const (
	HoverEntered HoverKind = iota
	HoverLeft
)

// SelectionKind 选中事件子类型
type SelectionKind int

const (
	JustSelected SelectionKind = iota
	JustDeselected
)

// Event 一个拾取事件
// Kind 决定 Hover 和 Selection 哪个字段有效
type Event struct {
	Kind      EventKind
	Tile      ecs.EntityID
	Hover     HoverKind
	Selection SelectionKind
}

// NewHoverEvent 创建悬停事件
func NewHoverEvent(tile ecs.EntityID, kind HoverKind) Event {
	return Event{Kind: EventHover, Tile: tile, Hover: kind}
}

// NewSelectionEvent 创建选中事件
func NewSelectionEvent(tile ecs.EntityID, kind SelectionKind) Event {
	return Event{Kind: EventSelection, Tile: tile, Selection: kind}
}

// IsHover 是否为悬停事件
func (e Event) IsHover() bool {
	return e.Kind == EventHover
}

// IsJustSelected 是否为"刚被选中"事件
func (e Event) IsJustSelected() bool {
	return e.Kind == EventSelection && e.Selection == JustSelected
}

// Queue 单 tick 的有序事件队列
//
// 每个 tick 由宿主填充，Drain 一次性取出全部事件。
// 悬停事件和选中事件按类别分给不同的消费者，同一事件不会被两个系统重复处理。
type Queue struct {
	events []Event
}

// Push 追加事件
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len 当前排队的事件数量
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain 取出全部事件并清空队列
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
