package components

import "image/color"

// ShapeType 渲染形状
type ShapeType int

const (
	// ShapeTile 平铺在地面上的格子
	ShapeTile ShapeType = iota
	// ShapeCube 立方体（玩家、指示器）
	ShapeCube
)

// VisualComponent 描述实体的固定外观
// 渲染系统按 Layer 从小到大绘制
type VisualComponent struct {
	Shape ShapeType
	// Size 立方体边长或格子边长（世界单位）
	Size  float64
	Color color.RGBA
	Layer int
}
