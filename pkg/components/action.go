package components

// ActionType 脚本动作类型
type ActionType int

const (
	// ActionWait 等待
	ActionWait ActionType = iota
	// ActionMoveBy 相对移动 (DX, DY)
	ActionMoveBy
	// ActionMoveToX 水平移动到 TargetX，Y 不变
	ActionMoveToX
	// ActionMoveTo 移动到 (TargetX, TargetY)
	ActionMoveTo
	// ActionRotateBy 相对旋转 Angle 弧度
	ActionRotateBy
	// ActionScaleTo 缩放到 To
	ActionScaleTo
	// ActionScaleBy 缩放为开始时的 Factor 倍
	ActionScaleBy
	// ActionTintTo 变色程度渐变到 To
	ActionTintTo
	// ActionBlink 闪烁 Blinks 次，结束时恢复可见
	ActionBlink
	// ActionGroup 并行执行 Children，全部完成才算完成
	ActionGroup
	// ActionSerial 依次执行 Children（用于在 Group 中嵌套序列）
	ActionSerial
	// ActionRemove 删除实体（瞬时）
	ActionRemove
)

// Timing 动作的时间曲线
type Timing int

const (
	TimingLinear Timing = iota
	TimingEaseOut
	TimingEaseInOut
)

// Action 一个有时长的脚本动作
//
// 动作是纯数据：由 ActionSystem 解释执行，可以直接序列化进存档。
// 取消动作就是把它从 ActionComponent 中删掉，不存在取消后仍触发的回调。
type Action struct {
	Type     ActionType `msgpack:"type"`
	Duration float64    `msgpack:"dur"`
	Elapsed  float64    `msgpack:"elapsed"`
	Timing   Timing     `msgpack:"timing"`

	DX      float64 `msgpack:"dx"`
	DY      float64 `msgpack:"dy"`
	TargetX float64 `msgpack:"tx"`
	TargetY float64 `msgpack:"ty"`
	Angle   float64 `msgpack:"angle"`
	Factor  float64 `msgpack:"factor"`
	To      float64 `msgpack:"to"`
	Blinks  int     `msgpack:"blinks"`

	// 动作开始时捕获的起始值
	Started bool    `msgpack:"started"`
	FromX   float64 `msgpack:"fx"`
	FromY   float64 `msgpack:"fy"`
	From    float64 `msgpack:"from"`

	Children []Action `msgpack:"children,omitempty"`
}

// Done 动作是否已执行完
func (a *Action) Done() bool {
	if a.Type == ActionGroup || a.Type == ActionSerial {
		for i := range a.Children {
			if !a.Children[i].Done() {
				return false
			}
		}
		return a.Started
	}
	return a.Started && a.Elapsed >= a.Duration
}

// TotalDuration 动作总时长（组取最长子动作，串行取总和）
func (a *Action) TotalDuration() float64 {
	switch a.Type {
	case ActionGroup:
	case ActionSerial:
		total := 0.0
		for i := range a.Children {
			total += a.Children[i].TotalDuration()
		}
		return total
	default:
		return a.Duration
	}
	longest := 0.0
	for i := range a.Children {
		if d := a.Children[i].TotalDuration(); d > longest {
			longest = d
		}
	}
	return longest
}

// Wait 创建等待动作
func Wait(duration float64) Action {
	return Action{Type: ActionWait, Duration: duration}
}

// MoveBy 创建相对移动动作
func MoveBy(dx, dy, duration float64) Action {
	return Action{Type: ActionMoveBy, DX: dx, DY: dy, Duration: duration}
}

// MoveToX 创建水平移动动作
func MoveToX(x, duration float64) Action {
	return Action{Type: ActionMoveToX, TargetX: x, Duration: duration}
}

// MoveTo 创建移动到目标点的动作
func MoveTo(x, y, duration float64) Action {
	return Action{Type: ActionMoveTo, TargetX: x, TargetY: y, Duration: duration}
}

// RotateBy 创建相对旋转动作
func RotateBy(angle, duration float64) Action {
	return Action{Type: ActionRotateBy, Angle: angle, Duration: duration}
}

// ScaleTo 创建缩放到目标值的动作
func ScaleTo(scale, duration float64) Action {
	return Action{Type: ActionScaleTo, To: scale, Duration: duration}
}

// ScaleBy 创建相对缩放动作
func ScaleBy(factor, duration float64) Action {
	return Action{Type: ActionScaleBy, Factor: factor, Duration: duration}
}

// TintTo 创建变色动作
func TintTo(amount, duration float64) Action {
	return Action{Type: ActionTintTo, To: amount, Duration: duration}
}

// Blink 创建闪烁动作
func Blink(times int, duration float64) Action {
	return Action{Type: ActionBlink, Blinks: times, Duration: duration}
}

// Group 创建并行动作组
func Group(children ...Action) Action {
	return Action{Type: ActionGroup, Children: children}
}

// Serial 创建串行动作
func Serial(children ...Action) Action {
	return Action{Type: ActionSerial, Children: children}
}

// Reversed 返回相对动作的反向动作（MoveBy、RotateBy、ScaleBy）
// 其他类型原样返回
func (a Action) Reversed() Action {
	a = cloneAction(a)
	switch a.Type {
	case ActionMoveBy:
		a.DX, a.DY = -a.DX, -a.DY
	case ActionRotateBy:
		a.Angle = -a.Angle
	case ActionScaleBy:
		if a.Factor != 0 {
			a.Factor = 1 / a.Factor
		}
	}
	return a
}

// RemoveFromParent 创建删除实体的动作
func RemoveFromParent() Action {
	return Action{Type: ActionRemove}
}

// Repeat 把动作展开为 count 份，用于拼接序列
func Repeat(count int, actions ...Action) []Action {
	out := make([]Action, 0, count*len(actions))
	for i := 0; i < count; i++ {
		for _, a := range actions {
			out = append(out, cloneAction(a))
		}
	}
	return out
}

// WithTiming 返回设置了时间曲线的副本
func (a Action) WithTiming(t Timing) Action {
	a.Timing = t
	return a
}

func cloneAction(a Action) Action {
	if len(a.Children) > 0 {
		children := make([]Action, len(a.Children))
		for i := range a.Children {
			children[i] = cloneAction(a.Children[i])
		}
		a.Children = children
	}
	return a
}

// ActionSequence 按顺序执行的一串动作
type ActionSequence struct {
	Key   string   `msgpack:"key"`
	Steps []Action `msgpack:"steps"`
	Index int      `msgpack:"index"`
}

// Finished 序列是否已执行完
func (s *ActionSequence) Finished() bool {
	return s.Index >= len(s.Steps)
}

// ActionComponent 实体上正在执行的动作序列
// 同一 Key 同时只存在一个序列，新序列会替换旧序列
type ActionComponent struct {
	Sequences []ActionSequence `msgpack:"seqs"`
}

// Run 开始一个动作序列
func (c *ActionComponent) Run(key string, steps ...Action) {
	c.Cancel(key)
	c.Sequences = append(c.Sequences, ActionSequence{Key: key, Steps: steps})
}

// Cancel 立即取消指定 Key 的序列
func (c *ActionComponent) Cancel(key string) {
	kept := c.Sequences[:0]
	for _, s := range c.Sequences {
		if s.Key != key {
			kept = append(kept, s)
		}
	}
	c.Sequences = kept
}

// CancelAll 立即取消所有序列
func (c *ActionComponent) CancelAll() {
	c.Sequences = nil
}

// HasActions 是否有正在执行的序列
func (c *ActionComponent) HasActions() bool {
	return len(c.Sequences) > 0
}

// HasAction 是否有指定 Key 的序列
func (c *ActionComponent) HasAction(key string) bool {
	for i := range c.Sequences {
		if c.Sequences[i].Key == key {
			return true
		}
	}
	return false
}

// 常用动作序列 Key
const (
	ActionKeyIdle    = "idle"    // 猫的出现-摇摆-消失
	ActionKeyCross   = "cross"   // 敌人横穿屏幕
	ActionKeyConga   = "conga"   // 火车成员的跟随步
	ActionKeyTurned  = "turned"  // 猫被救下后的变色
	ActionKeyBlink   = "blink"   // 玩家受伤闪烁
	ActionKeyScatter = "scatter" // 掉队猫的散开
)
