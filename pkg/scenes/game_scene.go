package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/zombieconga/pkg/session"
)

// GameScene 一局游戏
//
// 每帧把指针位置和累计时间交给 Session，然后播放本帧的提示音，
// 并按最新快照绘制。对局结束后请求切换到结算场景。
type GameScene struct {
	svc     *Services
	session *session.Session

	clock     float64
	requested bool

	hud *textPanel
}

// NewGameScene 创建对局场景
//
// 参数：
//   - svc: 共享依赖
//   - resume: 是否尝试恢复上次未结束的对局
func NewGameScene(svc *Services, resume bool) *GameScene {
	s := &GameScene{
		svc: svc,
		hud: newTextPanel(120, 16),
	}

	if resume {
		s.session = s.restore()
	}
	if s.session == nil {
		sess, err := session.New(svc.Config, svc.Seed)
		if err != nil {
			log.Printf("[GameScene] 错误: 无法创建对局: %v", err)
			return nil
		}
		s.session = sess
	}

	s.session.AttachStats(svc.Stats)
	if svc.Audio != nil {
		s.session.Cues().Subscribe(svc.Audio.HandleCue)
		svc.Audio.PlayMusic()
	}
	return s
}

// restore 读取并恢复存档，失败时返回 nil
func (s *GameScene) restore() *session.Session {
	if s.svc.Battles == nil {
		return nil
	}
	data, err := s.svc.Battles.LoadBattle()
	if err != nil {
		log.Printf("[GameScene] Warning: 存档读取失败，开始新对局: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}

	sess, err := session.Restore(s.svc.Config, data)
	if err != nil {
		log.Printf("[GameScene] Warning: 存档恢复失败，开始新对局: %v", err)
		return nil
	}
	// 存档只能用一次
	if err := s.svc.Battles.DeleteBattleSave(); err != nil {
		log.Printf("[GameScene] Warning: %v", err)
	}
	log.Printf("[GameScene] 已恢复对局 (%.1fs)", data.Time)
	return sess
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) && s.svc.Settings != nil {
		s.svc.Settings.ToggleShowPlayArea()
	}

	if pointer := ReadPointer(); pointer.Pressed {
		s.session.OnPointerUpdate(pointer.Vec())
	}

	s.clock += deltaTime
	s.session.OnTick(s.clock)
	// 提示音已通过订阅播放
	s.session.DrainCues()

	if s.session.IsOver() && !s.requested {
		s.requested = true
		snap := s.session.Snapshot()
		if s.svc.Battles != nil {
			if err := s.svc.Battles.DeleteBattleSave(); err != nil {
				log.Printf("[GameScene] Warning: %v", err)
			}
		}
		s.svc.SceneManager.Request(SceneRequest{
			Kind:        SceneGameOver,
			Outcome:     snap.Outcome,
			TrainLength: snap.TrainLength,
		})
	}
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := s.session.Snapshot()
	if s.svc.Settings != nil && s.svc.Settings.GetSettings().ShowPlayArea {
		drawPlayArea(screen, snap.PlayArea)
	}
	for _, v := range snap.Entities {
		drawEntity(screen, v)
	}

	area := snap.PlayArea
	s.hud.draw(screen, fmt.Sprintf("Lives: %d", snap.Lives), area.MinX+20, area.MinY+10)
	s.hud.draw(screen, fmt.Sprintf("Cat: %d", snap.TrainLength), area.MaxX-420, area.MinY+10)
}

// SaveOnExit 程序退出时保存未结束的对局
func (s *GameScene) SaveOnExit() bool {
	if s.session.IsOver() || s.svc.Battles == nil {
		return true
	}
	if err := s.svc.Battles.SaveBattle(s.session.Capture()); err != nil {
		log.Printf("[GameScene] 错误: 退出时保存失败: %v", err)
		return false
	}
	return true
}

// Session 当前对局（测试和调试用）
func (s *GameScene) Session() *session.Session {
	return s.session
}
