package game

import (
	"fmt"
	"log"

	"github.com/decker502/zombieconga/pkg/utils"
)

// Outcome 一局游戏的结果
type Outcome int

const (
	// OutcomePlaying 进行中
	OutcomePlaying Outcome = iota
	// OutcomeWon 火车长度达到目标
	OutcomeWon
	// OutcomeLost 生命耗尽
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// GameState 一局游戏的状态
//
// 每个会话持有自己的实例（不是全局单例）。
// 状态机：Playing → Won / Playing → Lost，两个终态都只会进入一次；
// 进入终态后生命值不再变化，OnOutcome 回调只通知一次。
type GameState struct {
	Lives       int
	TrainLength int
	Outcome     Outcome

	// Time 本局已进行的游戏时间（秒）
	Time float64

	// Velocity 玩家当前速度（像素/秒）
	Velocity utils.Vec2
	// LastTarget 最近一次输入请求的目标点，首次输入前为 nil
	LastTarget *utils.Vec2

	winTrainLength int
	observers      []func(Outcome)
	ended          bool
}

// NewGameState 创建一局新游戏的状态
//
// 参数：
//   - startingLives: 初始生命
//   - winTrainLength: 获胜所需的火车长度
func NewGameState(startingLives, winTrainLength int) *GameState {
	return &GameState{
		Lives:          startingLives,
		Outcome:        OutcomePlaying,
		winTrainLength: winTrainLength,
	}
}

// WinTrainLength 获胜所需的火车长度
func (gs *GameState) WinTrainLength() int {
	return gs.winTrainLength
}

// IsOver 是否已进入终态
func (gs *GameState) IsOver() bool {
	return gs.ended
}

// OnOutcome 注册终态回调（场景切换信号）
// 如果已经进入终态，回调不会再被调用
func (gs *GameState) OnOutcome(fn func(Outcome)) {
	gs.observers = append(gs.observers, fn)
}

// LoseLife 生命减一
// 终态后调用无效果；生命被扣成负数说明结算顺序有 bug，直接 panic
func (gs *GameState) LoseLife() {
	if gs.ended {
		return
	}
	gs.Lives--
	if gs.Lives < 0 {
		panic(fmt.Sprintf("game state invariant violated: lives = %d", gs.Lives))
	}
}

// SetTrainLength 更新火车长度（由系统按标签重新计数后写入）
func (gs *GameState) SetTrainLength(n int) {
	if n < 0 {
		panic(fmt.Sprintf("game state invariant violated: train length = %d", n))
	}
	gs.TrainLength = n
}

// Evaluate 检查胜负条件，进入终态时返回 true
// 获胜判断先于失败判断
func (gs *GameState) Evaluate() bool {
	if gs.ended {
		return false
	}

	switch {
	case gs.TrainLength >= gs.winTrainLength:
		gs.finish(OutcomeWon)
	case gs.Lives <= 0:
		gs.finish(OutcomeLost)
	default:
		return false
	}
	return true
}

func (gs *GameState) finish(outcome Outcome) {
	gs.ended = true
	gs.Outcome = outcome
	log.Printf("[GameState] Game over: %s (lives=%d, train=%d)", outcome, gs.Lives, gs.TrainLength)
	for _, fn := range gs.observers {
		fn(outcome)
	}
}

// Restore 用存档数据覆盖状态（不触发回调）
func (gs *GameState) Restore(lives, trainLength int, outcome Outcome, velocity utils.Vec2, target *utils.Vec2) {
	gs.Lives = lives
	gs.TrainLength = trainLength
	gs.Outcome = outcome
	gs.ended = outcome != OutcomePlaying
	gs.Velocity = velocity
	gs.LastTarget = target
}
