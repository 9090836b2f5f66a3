package game

import "log"

// PlayerStats 跨局累计的统计数据
type PlayerStats struct {
	GamesPlayed int `yaml:"gamesPlayed"`
	Wins        int `yaml:"wins"`
	Losses      int `yaml:"losses"`
	BestTrain   int `yaml:"bestTrain"` // 历史最长火车
	TotalCats   int `yaml:"totalCats"` // 累计救下的猫
}

const (
	statsObject   = "stats"
	statsProperty = "lifetime"
)

// StatsManager 统计数据的记录与持久化
type StatsManager struct {
	storage *Storage
	stats   PlayerStats
}

// NewStatsManager 创建统计管理器并加载历史数据
func NewStatsManager(storage *Storage) *StatsManager {
	sm := &StatsManager{storage: storage}
	if _, err := storage.loadYAML(statsObject, statsProperty, &sm.stats); err != nil {
		log.Printf("[StatsManager] Warning: %v (starting from zero)", err)
		sm.stats = PlayerStats{}
	}
	return sm
}

// Stats 当前统计数据（副本）
func (sm *StatsManager) Stats() PlayerStats {
	return sm.stats
}

// RecordRescue 记录一次救猫，并更新最长火车
func (sm *StatsManager) RecordRescue(trainLength int) {
	sm.stats.TotalCats++
	if trainLength > sm.stats.BestTrain {
		sm.stats.BestTrain = trainLength
	}
}

// RecordOutcome 记录一局的结果并立即保存
func (sm *StatsManager) RecordOutcome(outcome Outcome, trainLength int) error {
	switch outcome {
	case OutcomeWon:
		sm.stats.Wins++
	case OutcomeLost:
		sm.stats.Losses++
	default:
		return nil
	}
	sm.stats.GamesPlayed++
	if trainLength > sm.stats.BestTrain {
		sm.stats.BestTrain = trainLength
	}

	log.Printf("[StatsManager] Recorded %s: played=%d wins=%d losses=%d best=%d",
		outcome, sm.stats.GamesPlayed, sm.stats.Wins, sm.stats.Losses, sm.stats.BestTrain)
	return sm.Save()
}

// Save 保存统计数据
func (sm *StatsManager) Save() error {
	return sm.storage.saveYAML(statsObject, statsProperty, &sm.stats)
}
