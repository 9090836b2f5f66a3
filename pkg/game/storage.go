package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/zombieconga/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "zombie_conga"

// Storage gdata 跨平台存储的薄封装
//
// 所有管理器（设置、统计、战斗存档）都通过它读写数据。
// manager 为 nil 时处于降级模式：读取返回"不存在"，写入静默成功，数据只保留在内存中。
type Storage struct {
	manager *gdata.Manager
}

// NewStorage 用已打开的 gdata Manager 创建存储，manager 可为 nil（降级模式）
func NewStorage(manager *gdata.Manager) *Storage {
	return &Storage{manager: manager}
}

// OpenStorage 打开应用的持久化存储
//
// 打开失败时返回降级模式的存储和错误，调用方可以只记录日志继续运行
func OpenStorage(appName string) (*Storage, error) {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Storage] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewStorage(nil), fmt.Errorf("failed to open gdata storage: %w", err)
	}
	log.Printf("[Storage] Opened gdata storage for %s", appName)
	return NewStorage(manager), nil
}

// Available 是否可以持久化
func (s *Storage) Available() bool {
	return s != nil && s.manager != nil
}

// Exists 检查对象属性是否存在（被 Delete 清空的属性视为不存在）
func (s *Storage) Exists(object, prop string) bool {
	if !s.Available() {
		return false
	}
	if !s.manager.ObjectPropExists(object, prop) {
		return false
	}
	data, err := s.manager.LoadObjectProp(object, prop)
	return err == nil && len(data) > 0
}

// Load 读取对象属性，不存在时返回 (nil, nil)
func (s *Storage) Load(object, prop string) ([]byte, error) {
	if !s.Available() || !s.manager.ObjectPropExists(object, prop) {
		return nil, nil
	}
	data, err := s.manager.LoadObjectProp(object, prop)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s/%s: %w", object, prop, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}

// Save 写入对象属性
func (s *Storage) Save(object, prop string, data []byte) error {
	if !s.Available() {
		return nil
	}
	if err := s.manager.SaveObjectProp(object, prop, data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", object, prop, err)
	}
	return nil
}

// Delete 清空对象属性，不存在时不报错
func (s *Storage) Delete(object, prop string) error {
	if !s.Exists(object, prop) {
		return nil
	}
	if err := s.manager.SaveObjectProp(object, prop, []byte{}); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", object, prop, err)
	}
	return nil
}

// loadYAML 读取并反序列化 YAML 属性，属性不存在时返回 false
func (s *Storage) loadYAML(object, prop string, out interface{}) (bool, error) {
	data, err := s.Load(object, prop)
	if err != nil || data == nil {
		return false, err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s/%s: %w", object, prop, err)
	}
	return true, nil
}

// saveYAML 序列化为 YAML 并写入
func (s *Storage) saveYAML(object, prop string, in interface{}) error {
	if !s.Available() {
		return nil
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", object, prop, err)
	}
	return s.Save(object, prop, data)
}
