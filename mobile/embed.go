//go:build mobile

// embed.go - 移动端内置数据声明
//
// 仅在 -tags mobile 构建时编译。构建前需要把 data/game_config.yaml 复制到本目录：
//
//	mkdir -p mobile/data && cp data/game_config.yaml mobile/data/
package mobile

import "embed"

//go:embed data/game_config.yaml
var dataFS embed.FS
