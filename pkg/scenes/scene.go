package scenes

import (
	"fmt"

	"github.com/decker502/gridwalk/pkg/config"
	"github.com/decker502/gridwalk/pkg/game"
)

// Scene 是 game.Scene 的别名，场景包内的实现直接满足该接口
type Scene = game.Scene

var (
	_ game.Scene    = (*GridScene)(nil)
	_ game.Reporter = (*GridScene)(nil)
)

// NewSceneFactory 返回按变体名创建 GridScene 的工厂函数
//
// 参数:
//   - cfg: 已验证的棋盘配置
//   - settings: 设置管理器，可为 nil
func NewSceneFactory(cfg *config.BoardConfig, settings *game.SettingsManager) game.SceneFactory {
	return func(variant string) (game.Scene, error) {
		if cfg == nil {
			return nil, fmt.Errorf("board config is not loaded")
		}
		v, err := cfg.Variant(variant)
		if err != nil {
			return nil, err
		}
		if variant == "" {
			variant = cfg.DefaultVariant
		}

		var gs *game.GameSettings
		if settings != nil {
			gs = settings.GetSettings()
		}
		return NewGridScene(variant, v, gs)
	}
}
