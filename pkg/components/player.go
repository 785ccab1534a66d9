package components

// PlayerComponent 标识玩家实体（被两种移动方式控制的方块）
// 玩家坐标存放在同一实体的 TransformComponent 中
type PlayerComponent struct{}
