package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按请求创建场景，由 NewSceneFactory 提供
type SceneFactory func(req SceneRequest) Scene

// SceneManager 控制当前活动场景
//
// 场景在自己的 Update 中调用 Request 请求切换；切换延迟到下一次 Update 开头执行，
// 这样正在运行的场景能完整结束这一帧。
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	pending      *SceneRequest
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 立即切换到给定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Request 请求在下一帧切换场景，同一帧内后到的请求覆盖先前的
func (sm *SceneManager) Request(req SceneRequest) {
	sm.pending = &req
}

// HasPendingRequest 是否有待执行的切换
func (sm *SceneManager) HasPendingRequest() bool {
	return sm.pending != nil
}

func (sm *SceneManager) applyPending() {
	req := sm.pending
	sm.pending = nil

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置，忽略切换到 %s", req.Kind)
		return
	}

	newScene := sm.sceneFactory(*req)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", req.Kind)
		return
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 切换到场景: %s", req.Kind)
}

// Update 执行待处理的切换，然后更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.pending != nil {
		sm.applyPending()
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景，没有活动场景时什么也不做
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
