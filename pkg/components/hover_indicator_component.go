package components

// HoverIndicatorComponent 悬停指示器组件
// 移动 UI 启用时，标记鼠标当前悬停的格子
//
// 指示器不可选中、不可移动；坐标在创建时从格子拷贝，之后不再更新
type HoverIndicatorComponent struct {
	// Col, Row 指示器代表的格子坐标
	Col, Row int
}
