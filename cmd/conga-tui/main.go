// conga-tui 在终端里玩 Zombie Conga
//
// 用法:
//
//	go run ./cmd/conga-tui [-config data/game_config.yaml] [-seed 42] [-log conga.log] [-mute]
//
// 按住鼠标左键拖动控制僵尸，q / Esc 退出，m 切换背景音乐，r 在结算后开始新的一局。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/game"
	"github.com/decker502/zombieconga/pkg/terminal"
)

func main() {
	configPath := flag.String("config", "", "游戏配置文件（默认使用内置默认值）")
	seed := flag.Int64("seed", 0, "固定随机种子（0 表示随机）")
	logPath := flag.String("log", "", "日志文件（终端被游戏占用，默认丢弃日志）")
	mute := flag.Bool("mute", false, "关闭声音")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "conga-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, logPath string, mute bool) error {
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultGameConfig()
	if configPath != "" {
		loaded, err := config.LoadGameConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	storage, err := game.OpenStorage(game.AppName)
	if err != nil {
		log.Printf("[Main] Warning: %v, stats will not be saved", err)
	}
	settings := game.NewSettingsManager(storage).GetSettings()
	stats := game.NewStatsManager(storage)

	var sound *terminal.SoundManager
	if !mute && settings.SoundEnabled {
		sound = terminal.NewSoundManager(settings.SoundVolume)
		if err := sound.Initialize(); err != nil {
			log.Printf("[Main] Audio unavailable: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorWhite))
	screen.Clear()

	frontend, err := terminal.New(screen, cfg, seed, sound, stats)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := frontend.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return stats.Save()
}
