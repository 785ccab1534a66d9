package picking

import (
	"github.com/decker502/gridwalk/pkg/components"
	"github.com/decker502/gridwalk/pkg/ecs"
)

// Hit 指针命中的格子
type Hit struct {
	Tile     ecs.EntityID
	Position components.Vec3
}

// Picker 按需查询指针当前位于哪个格子之上
type Picker interface {
	// TopIntersection 返回指针下最上层的格子；没有命中时 ok 为 false
	TopIntersection() (hit Hit, ok bool)
}

// NoPicker 永远不命中的 Picker（没有指针的 headless 运行）
type NoPicker struct{}

// TopIntersection 实现 Picker 接口
func (NoPicker) TopIntersection() (Hit, bool) {
	return Hit{}, false
}
