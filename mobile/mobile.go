//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 用于构建 Android (.aar) 和 iOS (.xcframework) 包，仅在 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.zombieconga -o build/android/conga.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Conga.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/zombieconga/pkg/app"
	"github.com/decker502/zombieconga/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 空导出函数，确保包被 ebitenmobile 识别
func Dummy() {}
