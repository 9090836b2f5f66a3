package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
// ID 单调递增，因此 ID 顺序即注册顺序
type EntityID uint64

// Tag 实体分类标签（玩家、敌人、猫……），具体取值由 components 包定义
// 0 表示无标签
type Tag int

// NoTag 无标签
const NoTag Tag = 0

// EntityManager 管理所有实体和组件
//
// 除组件映射外还维护两个有序索引：
//   - order: 所有存活实体，按注册顺序
//   - byTag: 标签 -> 实体列表，按注册顺序
//
// 所有查询都按注册顺序返回，保证系统遍历结果确定。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	tags       map[EntityID]Tag
	byTag      map[Tag][]EntityID
	order      []EntityID
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	pending           map[EntityID]bool
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		tags:              make(map[EntityID]Tag),
		byTag:             make(map[Tag][]EntityID),
		order:             make([]EntityID, 0),
		entitiesToDestroy: make([]EntityID, 0),
		pending:           make(map[EntityID]bool),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.order = append(em.order, id)
	return id
}

// CreateEntityWithID 以指定ID创建实体（用于从存档恢复）
// ID 已存在时返回 false；nextID 会被推进到 id 之后
func (em *EntityManager) CreateEntityWithID(id EntityID) bool {
	if id == 0 {
		return false
	}
	if _, exists := em.components[id]; exists {
		return false
	}
	em.components[id] = make(map[reflect.Type]interface{})
	em.order = insertSorted(em.order, id)
	if uint64(id) >= em.nextID {
		em.nextID = uint64(id) + 1
	}
	return true
}

// DestroyEntity 标记实体待删除(不立即删除)
// 被标记的实体立即从所有查询中消失，组件数据保留到 RemoveMarkedEntities
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.components[id]; !exists || em.pending[id] {
		return
	}
	em.pending[id] = true
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsAlive 实体存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, exists := em.components[id]
	return exists && !em.pending[id]
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// SetTag 设置实体标签
// 标签改变时实体在索引中的位置仍按注册顺序排列（原地重新分类）
func (em *EntityManager) SetTag(id EntityID, tag Tag) {
	if _, exists := em.components[id]; !exists {
		return
	}
	old, had := em.tags[id]
	if had && old == tag {
		return
	}
	if had {
		em.byTag[old] = removeSorted(em.byTag[old], id)
	}
	if tag == NoTag {
		delete(em.tags, id)
		return
	}
	em.tags[id] = tag
	em.byTag[tag] = insertSorted(em.byTag[tag], id)
}

// GetTag 返回实体标签，无标签或实体不存在时返回 NoTag
func (em *EntityManager) GetTag(id EntityID) Tag {
	return em.tags[id]
}

// GetEntitiesWithTag 按注册顺序返回拥有指定标签的存活实体
// 返回的是副本，调用方在遍历时修改标签或删除实体是安全的
func (em *EntityManager) GetEntitiesWithTag(tag Tag) []EntityID {
	ids := em.byTag[tag]
	result := make([]EntityID, 0, len(ids))
	for _, id := range ids {
		if !em.pending[id] {
			result = append(result, id)
		}
	}
	return result
}

// CountTag 统计拥有指定标签的存活实体数量
func (em *EntityManager) CountTag(tag Tag) int {
	n := 0
	for _, id := range em.byTag[tag] {
		if !em.pending[id] {
			n++
		}
	}
	return n
}

// Entities 按注册顺序返回所有存活实体
func (em *EntityManager) Entities() []EntityID {
	result := make([]EntityID, 0, len(em.order))
	for _, id := range em.order {
		if !em.pending[id] {
			result = append(result, id)
		}
	}
	return result
}

// EntityCount 存活实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.order) - len(em.pending)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		if tag, had := em.tags[id]; had {
			em.byTag[tag] = removeSorted(em.byTag[tag], id)
			delete(em.tags, id)
		}
		em.order = removeSorted(em.order, id)
		delete(em.components, id)
		delete(em.pending, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// Clear 删除所有实体，ID 计数器不回退
func (em *EntityManager) Clear() {
	em.components = make(map[EntityID]map[reflect.Type]interface{})
	em.tags = make(map[EntityID]Tag)
	em.byTag = make(map[Tag][]EntityID)
	em.order = em.order[:0]
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
	em.pending = make(map[EntityID]bool)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体（按注册顺序）
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.order {
		if em.pending[id] {
			continue
		}
		compMap := em.components[id]
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

func insertSorted(ids []EntityID, id EntityID) []EntityID {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	if i < len(ids) && ids[i] == id {
		return ids
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}

func removeSorted(ids []EntityID, id EntityID) []EntityID {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	if i < len(ids) && ids[i] == id {
		return append(ids[:i], ids[i+1:]...)
	}
	return ids
}
