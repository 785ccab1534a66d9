package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/decker502/gridwalk/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 控制方式
const (
	ControlStep = "step" // 键盘逐格移动
	ControlPick = "pick" // 鼠标拾取格子移动
)

// 拾取策略
const (
	// PickingEvents 基于悬停进入/离开事件维护指示器，选中格子通过选中标记查找
	PickingEvents = "events"
	// PickingPoll 每个 tick 直接查询指针下的格子
	PickingPoll = "poll"
)

// DefaultBoardConfigPath 默认棋盘配置文件路径
const DefaultBoardConfigPath = "data/board.yaml"

// BoardVariant 单个棋盘变体配置
//
// 每个变体对应一种演示：纯键盘、纯鼠标拾取，或两者组合
type BoardVariant struct {
	// BoardHalfExtent 棋盘半宽 B，格子坐标范围为 [-B, B-1]
	BoardHalfExtent int `yaml:"boardHalfExtent"`

	// GroundElevation 地面高度，也是垂直移动的下限
	GroundElevation float64 `yaml:"groundElevation"`

	// MaxElevation 垂直移动的上限
	MaxElevation float64 `yaml:"maxElevation"`

	// PlayerStartElevation 玩家初始高度
	PlayerStartElevation float64 `yaml:"playerStartElevation"`

	// Controls 启用的控制方式（"step"、"pick"）
	Controls []string `yaml:"controls"`

	// PickingStrategy 拾取策略（"events" 或 "poll"）
	PickingStrategy string `yaml:"pickingStrategy"`

	// CameraFollowsPlayer 镜头是否跟随玩家
	CameraFollowsPlayer bool `yaml:"cameraFollowsPlayer"`

	// MovementUIAlwaysOn 移动 UI 始终开启且不响应 Left-Shift（触摸设备没有修饰键）
	MovementUIAlwaysOn bool `yaml:"movementUIAlwaysOn"`
}

// BoardConfig 棋盘配置文件
//
// 配置文件位置: data/board.yaml
type BoardConfig struct {
	// DefaultVariant 未指定变体时使用的变体名
	DefaultVariant string `yaml:"defaultVariant"`

	// Variants 变体名 -> 变体配置
	Variants map[string]BoardVariant `yaml:"variants"`
}

// LoadBoardConfig 加载棋盘配置
//
// 优先从嵌入资源读取，找不到时回退到磁盘文件。
//
// 参数:
//   - path: 配置文件路径（如 "data/board.yaml"）
//
// 返回:
//   - *BoardConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadBoardConfig(path string) (*BoardConfig, error) {
	var data []byte
	var err error
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read board config: %w", err)
	}

	return ParseBoardConfig(data)
}

// ParseBoardConfig 解析并验证 YAML 格式的棋盘配置
func ParseBoardConfig(data []byte) (*BoardConfig, error) {
	var config BoardConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse board config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid board config: %w", err)
	}

	return &config, nil
}

// Validate 验证配置有效性
func (c *BoardConfig) Validate() error {
	if len(c.Variants) == 0 {
		return fmt.Errorf("no variants defined")
	}
	if _, ok := c.Variants[c.DefaultVariant]; !ok {
		return fmt.Errorf("default variant '%s' is not defined", c.DefaultVariant)
	}
	for name, v := range c.Variants {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("variant '%s': %w", name, err)
		}
	}
	return nil
}

// Variant 获取指定名称的变体配置
// name 为空时返回默认变体
func (c *BoardConfig) Variant(name string) (BoardVariant, error) {
	if name == "" {
		name = c.DefaultVariant
	}
	v, ok := c.Variants[name]
	if !ok {
		return BoardVariant{}, fmt.Errorf("unknown board variant '%s' (available: %v)", name, c.VariantNames())
	}
	v.Controls = append([]string(nil), v.Controls...)
	return v, nil
}

// VariantNames 返回按字母排序的变体名列表
func (c *BoardConfig) VariantNames() []string {
	names := make([]string, 0, len(c.Variants))
	for name := range c.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate 验证变体配置
//
// 检查:
//   - 棋盘半宽至少为 2（边界检查需要 -B+1 < B-1）
//   - 地面高度 <= 玩家初始高度 <= 最大高度
//   - 控制方式和拾取策略取值合法
func (v *BoardVariant) Validate() error {
	if v.BoardHalfExtent < 2 {
		return fmt.Errorf("boardHalfExtent must be >= 2, got %d", v.BoardHalfExtent)
	}
	if v.MaxElevation < v.GroundElevation {
		return fmt.Errorf("maxElevation(%.1f) < groundElevation(%.1f)", v.MaxElevation, v.GroundElevation)
	}
	if v.PlayerStartElevation < v.GroundElevation || v.PlayerStartElevation > v.MaxElevation {
		return fmt.Errorf("playerStartElevation(%.1f) outside [%.1f, %.1f]",
			v.PlayerStartElevation, v.GroundElevation, v.MaxElevation)
	}
	if len(v.Controls) == 0 {
		return fmt.Errorf("at least one control must be enabled")
	}
	for _, c := range v.Controls {
		if c != ControlStep && c != ControlPick {
			return fmt.Errorf("unknown control '%s'", c)
		}
	}
	if err := ValidatePickingStrategy(v.PickingStrategy); err != nil {
		return err
	}
	return nil
}

// ValidatePickingStrategy 检查拾取策略取值
func ValidatePickingStrategy(strategy string) error {
	if strategy != PickingEvents && strategy != PickingPoll {
		return fmt.Errorf("unknown pickingStrategy '%s' (want '%s' or '%s')", strategy, PickingEvents, PickingPoll)
	}
	return nil
}

// HasControl 检查变体是否启用了指定控制方式
func (v BoardVariant) HasControl(control string) bool {
	for _, c := range v.Controls {
		if c == control {
			return true
		}
	}
	return false
}

// TileElevation 格子表面的高度
func (v BoardVariant) TileElevation() float64 {
	return v.GroundElevation
}

// SeatedElevation 玩家坐在格子上时的高度（地面 + 半个方块）
func (v BoardVariant) SeatedElevation() float64 {
	return v.GroundElevation + 0.5
}
