package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/zombieconga/pkg/game"
)

// GameOverDelay 结算画面自动开始下一局前的停留时间（秒）
const GameOverDelay = 3.0

// GameOverScene 结算画面：显示胜负，停留片刻或点击后开始新的一局
type GameOverScene struct {
	svc         *Services
	outcome     game.Outcome
	trainLength int
	elapsed     float64
	requested   bool

	text *textPanel
}

// NewGameOverScene 创建结算场景
func NewGameOverScene(svc *Services, outcome game.Outcome, trainLength int) *GameOverScene {
	log.Printf("[GameOverScene] %s with a train of %d", outcome, trainLength)
	return &GameOverScene{
		svc:         svc,
		outcome:     outcome,
		trainLength: trainLength,
		text:        newTextPanel(240, 16),
	}
}

// Update 计时，超时或点击时请求新的一局
func (s *GameOverScene) Update(deltaTime float64) {
	if s.requested {
		return
	}
	s.elapsed += deltaTime
	if s.elapsed >= GameOverDelay || ReadPointer().JustPressed {
		s.requested = true
		s.svc.SceneManager.Request(SceneRequest{Kind: SceneGame})
	}
}

// Title 结算标题
func (s *GameOverScene) Title() string {
	if s.outcome == game.OutcomeWon {
		return "You Win!"
	}
	return "You Lose!"
}

// Draw 绘制结算画面
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	s.text.draw(screen, s.Title(), w/2-240, h/2-160)
	s.text.draw(screen, fmt.Sprintf("Cats: %d", s.trainLength), w/2-240, h/2-60)

	if s.svc.Stats != nil {
		stats := s.svc.Stats.Stats()
		line := fmt.Sprintf("Won %d of %d, best %d", stats.Wins, stats.GamesPlayed, stats.BestTrain)
		s.text.draw(screen, line, w/2-480, h/2+40)
	}
}
