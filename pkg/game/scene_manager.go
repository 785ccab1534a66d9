package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定变体的棋盘场景，避免循环依赖
type SceneFactory func(variant string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene   Scene
	currentVariant string
	sceneFactory   SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or LoadVariant to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentVariant 返回当前场景的变体名
func (sm *SceneManager) CurrentVariant() string {
	return sm.currentVariant
}

// LoadVariant 加载指定变体的棋盘场景
// 失败时保留当前场景
//
// 返回：
//   - bool: 是否成功切换
func (sm *SceneManager) LoadVariant(variant string) bool {
	log.Printf("[SceneManager] 加载变体: %s", variant)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene, err := sm.sceneFactory(variant)
	if err != nil || newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景 %s: %v", variant, err)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentVariant = variant
	log.Printf("[SceneManager] 成功切换到变体: %s", variant)
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
