package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/zombieconga/pkg/app"
	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "外部游戏配置文件（默认使用内置 data/game_config.yaml）")
	seed := flag.Int64("seed", 0, "固定随机种子（0 表示随机）")
	fresh := flag.Bool("fresh", false, "忽略未结束的对局存档，直接开始新的一局")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Fresh:      *fresh,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Zombie Conga")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
