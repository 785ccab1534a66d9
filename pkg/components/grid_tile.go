package components

// GridTileComponent 标识一个网格格子
//
// 格子由外部的拾取系统写入 Selected，移动系统消费后清除。
// 世界坐标存放在同一实体的 TransformComponent 中。
type GridTileComponent struct {
	// Col, Row 格子的整数坐标，分别对应世界 X、Z
	Col, Row int

	// Selected 是否刚被点击选中（一次性信号，被消费后清为 false）
	Selected bool
}
