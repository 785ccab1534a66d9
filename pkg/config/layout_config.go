package config

// 布局配置常量
// 窗口尺寸和 HUD 位置（逻辑像素）
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1024

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 768

	// BoardOriginX, BoardOriginY 世界原点在屏幕上的默认位置
	BoardOriginX = GameWindowWidth / 2.0
	BoardOriginY = GameWindowHeight / 2.0

	// HUDMarginX, HUDMarginY HUD 文本左上角位置
	HUDMarginX = 12.0
	HUDMarginY = 12.0

	// HUDLineHeight HUD 行高
	HUDLineHeight = 16.0

	// CameraMinZoom, CameraMaxZoom 镜头缩放范围
	CameraMinZoom = 0.5
	CameraMaxZoom = 3.0

	// CameraZoomStep 每格滚轮的缩放量
	CameraZoomStep = 0.1
)
