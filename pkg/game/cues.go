package game

import "github.com/decker502/zombieconga/pkg/ecs"

// CueType 音效/视觉提示类型
type CueType int

const (
	// CueCatRescued 救下一只猫
	CueCatRescued CueType = iota
	// CueEnemyHit 被敌人撞到
	CueEnemyHit
	// CueGameWon 获胜
	CueGameWon
	// CueGameLost 失败
	CueGameLost
)

// AllCueTypes 全部提示类型
func AllCueTypes() []CueType {
	return []CueType{CueCatRescued, CueEnemyHit, CueGameWon, CueGameLost}
}

func (c CueType) String() string {
	switch c {
	case CueCatRescued:
		return "CatRescued"
	case CueEnemyHit:
		return "EnemyHit"
	case CueGameWon:
		return "GameWon"
	case CueGameLost:
		return "GameLost"
	default:
		return "Unknown"
	}
}

// Cue 一次性的提示事件，不需要确认
type Cue struct {
	Type   CueType
	Entity ecs.EntityID // 相关实体（没有时为 0）
	Time   float64      // 发生时的游戏时间

	// RecoverAfter 受伤后闪烁持续时间，仅 CueEnemyHit 使用
	RecoverAfter float64
}

// CueBus 提示事件总线
// 同时支持推送（Subscribe）和拉取（Drain），表现层任选其一
type CueBus struct {
	subscribers []func(Cue)
	pending     []Cue
}

// NewCueBus 创建事件总线
func NewCueBus() *CueBus {
	return &CueBus{}
}

// Subscribe 注册订阅者，事件发布时同步调用
func (b *CueBus) Subscribe(fn func(Cue)) {
	b.subscribers = append(b.subscribers, fn)
}

// Publish 发布事件
func (b *CueBus) Publish(c Cue) {
	b.pending = append(b.pending, c)
	for _, fn := range b.subscribers {
		fn(c)
	}
}

// Drain 取出并清空所有未读事件
func (b *CueBus) Drain() []Cue {
	out := b.pending
	b.pending = nil
	return out
}
