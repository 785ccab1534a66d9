package components

// CameraComponent 管理等距视角镜头的平移和缩放
type CameraComponent struct {
	// PanX, PanY 屏幕空间平移量（像素）
	PanX, PanY float64

	// Zoom 缩放倍率，1.0 为原始大小
	Zoom float64

	// FollowPlayer 镜头是否以玩家为中心
	FollowPlayer bool

	// 右键拖拽状态
	Dragging             bool
	LastDragX, LastDragY int
}
