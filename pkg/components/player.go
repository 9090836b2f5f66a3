package components

// PlayerComponent 标记玩家控制的僵尸
// 速度和目标点保存在 GameState 中，这里只放表现相关的状态
type PlayerComponent struct {
	Speed float64 `msgpack:"speed"` // 移动速度（像素/秒）

	// Walking 是否播放行走动画
	// 收到新目标时开始，到达目标时停止
	Walking bool `msgpack:"walking"`
}
