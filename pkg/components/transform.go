package components

import "math"

// Vec3 三维坐标
// X、Z 为水平轴，Y 为高度
type Vec3 struct {
	X, Y, Z float64
}

// SameHorizontal 判断两个坐标在水平面上是否重合（忽略高度）
func (v Vec3) SameHorizontal(o Vec3) bool {
	return v.X == o.X && v.Z == o.Z
}

// Rounded 返回四舍五入到最近整数格点的坐标
func (v Vec3) Rounded() Vec3 {
	return Vec3{X: math.Round(v.X), Y: math.Round(v.Y), Z: math.Round(v.Z)}
}

// TransformComponent 存储实体的世界坐标
type TransformComponent struct {
	Position Vec3
}
