// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包中提取出来，桌面端（main.go）和移动端（mobile/mobile.go）共用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/embedded"
	"github.com/decker502/zombieconga/pkg/game"
	"github.com/decker502/zombieconga/pkg/scenes"
	"github.com/decker502/zombieconga/pkg/sound"
)

// GameConfigPath 内置游戏配置的路径
const GameConfigPath = "data/game_config.yaml"

// Config 应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部游戏配置文件，为空时使用内置配置
	ConfigPath string
	// Seed 固定随机种子，0 表示每局随机
	Seed int64
	// Fresh 忽略未结束的对局存档
	Fresh bool
}

// App 实现 ebiten.Game 接口
type App struct {
	services     *scenes.Services
	sceneManager *scenes.SceneManager
	width        int
	height       int
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 使用内置配置时必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	storage, err := game.OpenStorage(game.AppName)
	if err != nil {
		// 降级模式：设置和存档只保存在内存中
		log.Printf("[App] Warning: %v", err)
	}
	settings := game.NewSettingsManager(storage)

	audioContext := audio.NewContext(48000)
	audioManager := sound.NewAudioManager(audioContext, settings)
	log.Printf("[App] AudioManager initialized")

	sceneManager := scenes.NewSceneManager()
	svc := &scenes.Services{
		Config:       gameConfig,
		SceneManager: sceneManager,
		Audio:        audioManager,
		Settings:     settings,
		Stats:        game.NewStatsManager(storage),
		Battles:      game.NewBattleSerializer(storage),
		Seed:         cfg.Seed,
	}
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(svc))

	resume := !cfg.Fresh && svc.Battles.HasBattleSave()
	if resume {
		log.Printf("[App] Found a suspended round, resuming")
	}
	first := scenes.NewGameScene(svc, resume)
	if first == nil {
		return nil, fmt.Errorf("failed to create game scene")
	}
	sceneManager.SwitchTo(first)

	ebiten.SetFullscreen(settings.GetSettings().Fullscreen)
	ebiten.SetWindowClosingHandled(true)

	return &App{
		services:     svc,
		sceneManager: sceneManager,
		width:        int(gameConfig.Screen.Width),
		height:       int(gameConfig.Screen.Height),
		verbose:      cfg.Verbose,
	}, nil
}

// LoadGameConfig 加载游戏配置
// path 为空时读取内置的 data/game_config.yaml，内置资源未初始化时使用默认配置
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载游戏配置: %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] 内置资源未初始化，使用默认配置")
		return config.DefaultGameConfig(), nil
	}
	data, err := embedded.ReadFile(GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内置游戏配置读取失败: %w", err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内置游戏配置解析失败: %w", err)
	}
	log.Printf("[Config] 加载内置游戏配置: %s", GameConfigPath)
	return cfg, nil
}

// Update 更新游戏逻辑，每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// F11 切换全屏并记住选择
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.services.Settings.SetFullscreen(fullscreen)
	}
	// M 切换背景音乐
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s := a.services.Settings
		s.SetMusicEnabled(!s.GetSettings().MusicEnabled)
		if s.GetSettings().MusicEnabled {
			a.services.Audio.PlayMusic()
		} else {
			a.services.Audio.StopMusic()
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时用黑色填充 letterbox 区域并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸（场景坐标），Ebitengine 负责缩放到实际窗口
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// SaveOnExit 保存设置、统计和未结束的对局
// 任何一项失败都只记录日志，返回合并后的错误
func (a *App) SaveOnExit() error {
	var errs []error
	if saveable, ok := a.sceneManager.GetCurrentScene().(scenes.Saveable); ok {
		if !saveable.SaveOnExit() {
			errs = append(errs, fmt.Errorf("scene state not saved"))
		}
	}
	if err := a.services.Settings.Save(); err != nil {
		errs = append(errs, err)
	}
	if err := a.services.Stats.Save(); err != nil {
		errs = append(errs, err)
	}

	err := errors.Join(errs...)
	if err != nil {
		log.Printf("[App] Warning: 退出时保存失败: %v", err)
	}
	return err
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
