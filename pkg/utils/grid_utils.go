package utils

import "math"

// 等距投影参数常量
const (
	TileHalfWidth   = 24.0 // 格子菱形半宽（像素，缩放前）
	TileHalfHeight  = 12.0 // 格子菱形半高（像素，缩放前）
	ElevationPixels = 14.0 // 每单位高度对应的屏幕像素
)

// Projection 描述世界坐标到屏幕坐标的等距投影
//
// 世界 (x, z) 水平面映射为屏幕菱形网格:
//
//	sx = OriginX + (x - z) * TileHalfWidth * Zoom
//	sy = OriginY + (x + z) * TileHalfHeight * Zoom - y * ElevationPixels * Zoom
//
// 因此世界方向 (-1, -1) 对应屏幕正上方
type Projection struct {
	OriginX, OriginY float64
	Zoom             float64
}

// NewProjection 创建以 (originX, originY) 为世界原点屏幕位置的投影
func NewProjection(originX, originY, zoom float64) Projection {
	if zoom <= 0 {
		zoom = 1
	}
	return Projection{OriginX: originX, OriginY: originY, Zoom: zoom}
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func (p Projection) WorldToScreen(x, y, z float64) (sx, sy float64) {
	hw := TileHalfWidth * p.Zoom
	hh := TileHalfHeight * p.Zoom
	sx = p.OriginX + (x-z)*hw
	sy = p.OriginY + (x+z)*hh - y*ElevationPixels*p.Zoom
	return sx, sy
}

// ScreenToGround 将屏幕坐标反投影到高度为 ground 的水平面
// 返回连续的世界坐标 (x, z)
func (p Projection) ScreenToGround(sx, sy, ground float64) (x, z float64) {
	hw := TileHalfWidth * p.Zoom
	hh := TileHalfHeight * p.Zoom
	u := (sx - p.OriginX) / hw
	v := (sy - p.OriginY + ground*ElevationPixels*p.Zoom) / hh
	x = (u + v) / 2
	z = (v - u) / 2
	return x, z
}

// ScreenToTile 将屏幕坐标转换为最近的格子坐标
// 参数:
//   - sx, sy: 屏幕坐标
//   - ground: 地面高度
//   - halfExtent: 棋盘半宽 B，有效格子范围为 [-B, B-1]
//
// 返回:
//   - col, row: 格子坐标
//   - isValid: 是否落在棋盘范围内
func (p Projection) ScreenToTile(sx, sy, ground float64, halfExtent int) (col, row int, isValid bool) {
	x, z := p.ScreenToGround(sx, sy, ground)
	col = int(math.Round(x))
	row = int(math.Round(z))
	if !TileInBoard(col, row, halfExtent) {
		return 0, 0, false
	}
	return col, row, true
}

// TileInBoard 检查格子坐标是否在棋盘范围 [-B, B-1] 内
func TileInBoard(col, row, halfExtent int) bool {
	return col >= -halfExtent && col < halfExtent && row >= -halfExtent && row < halfExtent
}

// TileDiamond 返回格子菱形四个顶点的屏幕坐标（上、右、下、左）
// size 为格子边长（世界单位），1.0 覆盖整个格子
func (p Projection) TileDiamond(x, y, z, size float64) [4][2]float64 {
	h := size / 2
	var pts [4][2]float64
	pts[0][0], pts[0][1] = p.WorldToScreen(x-h, y, z-h)
	pts[1][0], pts[1][1] = p.WorldToScreen(x+h, y, z-h)
	pts[2][0], pts[2][1] = p.WorldToScreen(x+h, y, z+h)
	pts[3][0], pts[3][1] = p.WorldToScreen(x-h, y, z+h)
	return pts
}
