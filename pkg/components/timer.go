package components

// TimerComponent 通用周期计时器
// 用于生成器等需要固定间隔触发的行为
type TimerComponent struct {
	Name        string  `msgpack:"name"`    // 计时器名称，如 "enemy_spawn"
	TargetTime  float64 `msgpack:"target"`  // 触发间隔（秒）
	CurrentTime float64 `msgpack:"current"` // 距上次触发已过时间（秒）
	IsReady     bool    `msgpack:"ready"`   // 下一次 Tick 立即触发（首帧触发）
}

// Tick 推进计时器，返回本帧应触发的次数
// 间隔小于等于 0 时永不触发
func (t *TimerComponent) Tick(deltaTime float64) int {
	if t.TargetTime <= 0 {
		return 0
	}
	fired := 0
	if t.IsReady {
		t.IsReady = false
		fired++
	}
	t.CurrentTime += deltaTime
	for t.CurrentTime >= t.TargetTime {
		t.CurrentTime -= t.TargetTime
		fired++
	}
	return fired
}
