package game

import "log"

// GameSettings 游戏设置
type GameSettings struct {
	// 音频
	MusicVolume  float64 `yaml:"musicVolume"`  // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 背景音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 显示
	Fullscreen   bool `yaml:"fullscreen"`   // 启动时全屏
	ShowPlayArea bool `yaml:"showPlayArea"` // 绘制可玩区域边框（调试）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 设置的加载、修改和保存
// Set* 方法只修改内存，需要调用 Save 持久化
type SettingsManager struct {
	storage  *Storage
	settings *GameSettings
}

// NewSettingsManager 创建设置管理器并加载已保存的设置
// 加载失败时使用默认设置，只记录警告
func NewSettingsManager(storage *Storage) *SettingsManager {
	sm := &SettingsManager{
		storage:  storage,
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 从存储重新加载设置
func (sm *SettingsManager) Load() error {
	loaded := DefaultSettings()
	found, err := sm.storage.loadYAML(settingsObject, settingsProperty, loaded)
	if err != nil {
		sm.settings = DefaultSettings()
		return err
	}
	if found {
		loaded.MusicVolume = clampVolume(loaded.MusicVolume)
		loaded.SoundVolume = clampVolume(loaded.SoundVolume)
		log.Printf("[SettingsManager] Settings loaded")
	}
	sm.settings = loaded
	return nil
}

// Save 保存当前设置（降级模式下静默成功）
func (sm *SettingsManager) Save() error {
	if err := sm.storage.saveYAML(settingsObject, settingsProperty, sm.settings); err != nil {
		return err
	}
	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicVolume 设置音乐音量（限制在 0~1）
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume 设置音效音量（限制在 0~1）
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetMusicEnabled 打开/关闭背景音乐
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

// SetSoundEnabled 打开/关闭音效
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetFullscreen 设置启动时是否全屏
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleShowPlayArea 切换可玩区域边框的显示
func (sm *SettingsManager) ToggleShowPlayArea() bool {
	sm.settings.ShowPlayArea = !sm.settings.ShowPlayArea
	return sm.settings.ShowPlayArea
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
