package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// HeadingMode 玩家朝向的计算方式
type HeadingMode string

const (
	// HeadingLegacy 兼容旧手感的公式：atan2(velocity - position)
	HeadingLegacy HeadingMode = "legacy"

	// HeadingVelocity 几何上正确的朝向：atan2(velocity)
	HeadingVelocity HeadingMode = "velocity"
)

// GameConfig 一局游戏的全部可调参数
//
// 配置文件位置: data/game_config.yaml
// 所有时间单位为秒，距离单位为场景像素。
type GameConfig struct {
	Screen ScreenConfig `yaml:"screen"`
	Player PlayerConfig `yaml:"player"`
	Rules  RulesConfig  `yaml:"rules"`
	Train  TrainConfig  `yaml:"train"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Cat    CatConfig    `yaml:"cat"`

	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`
}

// ScreenConfig 场景尺寸和可玩区域
type ScreenConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MaxAspectRatio float64 `yaml:"maxAspectRatio"` // 可玩区域的最大宽高比
}

// PlayerConfig 玩家（僵尸）参数
type PlayerConfig struct {
	Speed       float64     `yaml:"speed"` // 移动速度（像素/秒）
	StartX      float64     `yaml:"startX"`
	StartY      float64     `yaml:"startY"`
	Width       float64     `yaml:"width"`
	Height      float64     `yaml:"height"`
	HeadingMode HeadingMode `yaml:"headingMode"`

	// 受伤后闪烁：BlinkDuration 秒内闪烁 BlinkTimes 次
	BlinkDuration float64 `yaml:"blinkDuration"`
	BlinkTimes    int     `yaml:"blinkTimes"`
}

// RulesConfig 胜负规则
type RulesConfig struct {
	StartingLives     int `yaml:"startingLives"`
	WinTrainLength    int `yaml:"winTrainLength"`
	MaxCatsLostPerHit int `yaml:"maxCatsLostPerHit"`

	// MaxDeltaTime 单帧时间步长上限，0 表示不限制
	MaxDeltaTime float64 `yaml:"maxDeltaTime"`
}

// TrainConfig 猫火车参数
type TrainConfig struct {
	Speed        float64 `yaml:"speed"`        // 跟随速度（像素/秒）
	StepDuration float64 `yaml:"stepDuration"` // 每个跟随步的时长
	TurnDuration float64 `yaml:"turnDuration"` // 被救下时变色时长

	// 掉队猫的散开动画
	ScatterRadius   float64 `yaml:"scatterRadius"`
	ScatterDuration float64 `yaml:"scatterDuration"`
	ScatterSpin     float64 `yaml:"scatterSpin"` // 散开期间旋转的总弧度
}

// EnemyConfig 敌人参数
type EnemyConfig struct {
	SpawnInterval  float64 `yaml:"spawnInterval"`
	CrossDuration  float64 `yaml:"crossDuration"` // 从右边缘移动到左边缘外的时长
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	CollisionInset float64 `yaml:"collisionInset"`
}

// CatConfig 猫参数
type CatConfig struct {
	SpawnInterval     float64 `yaml:"spawnInterval"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	AppearDuration    float64 `yaml:"appearDuration"`
	WiggleCycles      int     `yaml:"wiggleCycles"`
	WiggleDuration    float64 `yaml:"wiggleDuration"` // 一次完整摇摆（左+右）的时长
	WiggleAngle       float64 `yaml:"wiggleAngle"`
	PulseScale        float64 `yaml:"pulseScale"`
	IdleWait          float64 `yaml:"idleWait"`
	DisappearDuration float64 `yaml:"disappearDuration"`
}

// DefaultGameConfig 返回默认配置（与 data/game_config.yaml 一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:          SceneWidth,
			Height:         SceneHeight,
			MaxAspectRatio: 16.0 / 9.0,
		},
		Player: PlayerConfig{
			Speed:         480,
			StartX:        400,
			StartY:        400,
			Width:         157,
			Height:        102,
			HeadingMode:   HeadingLegacy,
			BlinkDuration: 3.0,
			BlinkTimes:    10,
		},
		Rules: RulesConfig{
			StartingLives:     5,
			WinTrainLength:    5,
			MaxCatsLostPerHit: 2,
		},
		Train: TrainConfig{
			Speed:           480,
			StepDuration:    0.3,
			TurnDuration:    0.2,
			ScatterRadius:   100,
			ScatterDuration: 1.0,
			ScatterSpin:     4 * math.Pi,
		},
		Enemy: EnemyConfig{
			SpawnInterval:  2.9,
			CrossDuration:  2.0,
			Width:          180,
			Height:         225,
			CollisionInset: 20,
		},
		Cat: CatConfig{
			SpawnInterval:     1.0,
			Width:             80,
			Height:            90,
			AppearDuration:    0.5,
			WiggleCycles:      10,
			WiggleDuration:    1.0,
			WiggleAngle:       math.Pi / 8,
			PulseScale:        1.2,
			IdleWait:          10,
			DisappearDuration: 0.5,
		},
	}
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game_config.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 配置
// 未出现在 YAML 中的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %.0fx%.0f", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.MaxAspectRatio <= 0 {
		return fmt.Errorf("maxAspectRatio must be positive, got %.3f", c.Screen.MaxAspectRatio)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %.1f", c.Player.Speed)
	}
	switch c.Player.HeadingMode {
	case HeadingLegacy, HeadingVelocity:
	default:
		return fmt.Errorf("unknown headingMode %q (want %q or %q)", c.Player.HeadingMode, HeadingLegacy, HeadingVelocity)
	}
	if c.Player.BlinkTimes <= 0 || c.Player.BlinkDuration <= 0 {
		return fmt.Errorf("blink settings must be positive, got %d times over %.2fs", c.Player.BlinkTimes, c.Player.BlinkDuration)
	}
	if c.Rules.StartingLives <= 0 {
		return fmt.Errorf("startingLives must be positive, got %d", c.Rules.StartingLives)
	}
	if c.Rules.WinTrainLength <= 0 {
		return fmt.Errorf("winTrainLength must be positive, got %d", c.Rules.WinTrainLength)
	}
	if c.Rules.MaxCatsLostPerHit < 0 {
		return fmt.Errorf("maxCatsLostPerHit cannot be negative, got %d", c.Rules.MaxCatsLostPerHit)
	}
	if c.Rules.MaxDeltaTime < 0 {
		return fmt.Errorf("maxDeltaTime cannot be negative, got %.3f", c.Rules.MaxDeltaTime)
	}
	if c.Train.StepDuration <= 0 {
		return fmt.Errorf("train stepDuration must be positive, got %.3f", c.Train.StepDuration)
	}
	if c.Enemy.SpawnInterval <= 0 || c.Cat.SpawnInterval <= 0 {
		return fmt.Errorf("spawn intervals must be positive, got enemy=%.2f cat=%.2f", c.Enemy.SpawnInterval, c.Cat.SpawnInterval)
	}
	if c.Enemy.CrossDuration <= 0 {
		return fmt.Errorf("enemy crossDuration must be positive, got %.2f", c.Enemy.CrossDuration)
	}
	if c.Enemy.CollisionInset < 0 {
		return fmt.Errorf("enemy collisionInset cannot be negative, got %.1f", c.Enemy.CollisionInset)
	}
	if c.Cat.WiggleCycles < 0 {
		return fmt.Errorf("cat wiggleCycles cannot be negative, got %d", c.Cat.WiggleCycles)
	}
	return nil
}
