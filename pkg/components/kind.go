package components

import "github.com/decker502/zombieconga/pkg/ecs"

// 实体种类标签
//
// 种类是 EntityManager 标签索引的 key，系统通过 GetEntitiesWithTag 按注册顺序遍历。
// 被救下的猫原地从 KindCat 改为 KindTrain；掉队的猫标签被清除（KindNone），
// 只剩散开动画，随后被删除。
const (
	KindNone   ecs.Tag = ecs.NoTag
	KindPlayer ecs.Tag = iota
	KindEnemy
	KindCat
	KindTrain
)

// KindName 返回种类的可读名称（用于日志和渲染快照）
func KindName(kind ecs.Tag) string {
	switch kind {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindCat:
		return "cat"
	case KindTrain:
		return "train"
	default:
		return "released"
	}
}
