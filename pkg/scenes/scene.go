// Package scenes 包含 ebiten 前端的两个场景：对局和结算
//
// 场景只做输入转发、绘制和音效播放，游戏逻辑全部在 session 包中。
package scenes

import (
	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/game"
	"github.com/decker502/zombieconga/pkg/sound"
)

// Services 场景共享的依赖
type Services struct {
	Config       *config.GameConfig
	SceneManager *SceneManager
	Audio        *sound.AudioManager
	Settings     *game.SettingsManager
	Stats        *game.StatsManager
	Battles      *game.BattleSerializer

	// Seed 固定随机种子（0 表示每局随机）
	Seed int64
}

// NewSceneFactory 返回按请求创建场景的工厂函数
func NewSceneFactory(svc *Services) SceneFactory {
	return func(req SceneRequest) Scene {
		switch req.Kind {
		case SceneGame:
			if s := NewGameScene(svc, req.Resume); s != nil {
				return s
			}
			return nil
		case SceneGameOver:
			return NewGameOverScene(svc, req.Outcome, req.TrainLength)
		default:
			return nil
		}
	}
}
