package game

import (
	"fmt"
	"log"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	battleObject   = "battle"
	battleProperty = "current"
)

// BattleSerializer 未结束对局的存取
//
// 存档用 msgpack 编码后写入 gdata 存储（同一时间只保留一份）。
// 它只负责编解码和读写，快照的采集与恢复由会话完成。
type BattleSerializer struct {
	storage *Storage
}

// NewBattleSerializer 创建战斗序列化器
func NewBattleSerializer(storage *Storage) *BattleSerializer {
	return &BattleSerializer{storage: storage}
}

// EncodeBattle 把存档编码为 msgpack
func EncodeBattle(data *BattleSaveData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("battle save data is nil")
	}
	b, err := msgpack.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode battle save: %w", err)
	}
	return b, nil
}

// DecodeBattle 解码 msgpack 存档并检查版本
func DecodeBattle(b []byte) (*BattleSaveData, error) {
	var data BattleSaveData
	if err := msgpack.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("failed to decode battle save: %w", err)
	}
	if data.Version != BattleSaveVersion {
		return nil, fmt.Errorf("incompatible battle save version: got %d, want %d", data.Version, BattleSaveVersion)
	}
	return &data, nil
}

// SaveBattle 保存存档，覆盖之前的存档
func (s *BattleSerializer) SaveBattle(data *BattleSaveData) error {
	b, err := EncodeBattle(data)
	if err != nil {
		return err
	}
	if err := s.storage.Save(battleObject, battleProperty, b); err != nil {
		return err
	}
	log.Printf("[BattleSerializer] Saved battle: time=%.1fs lives=%d train=%d entities=%d (%d bytes)",
		data.Time, data.Lives, data.TrainLength, len(data.Entities), len(b))
	return nil
}

// LoadBattle 读取存档，没有存档时返回 (nil, nil)
func (s *BattleSerializer) LoadBattle() (*BattleSaveData, error) {
	b, err := s.storage.Load(battleObject, battleProperty)
	if err != nil || b == nil {
		return nil, err
	}
	data, err := DecodeBattle(b)
	if err != nil {
		return nil, err
	}
	log.Printf("[BattleSerializer] Loaded battle saved at %s", data.SaveTime.Format("2006-01-02 15:04:05"))
	return data, nil
}

// HasBattleSave 是否存在未结束的对局
func (s *BattleSerializer) HasBattleSave() bool {
	return s.storage.Exists(battleObject, battleProperty)
}

// DeleteBattleSave 删除存档（对局结束或已恢复后调用）
func (s *BattleSerializer) DeleteBattleSave() error {
	return s.storage.Delete(battleObject, battleProperty)
}
