// embed.go - 内置数据声明
// //go:embed 只能嵌入当前包目录及其子目录的文件，所以放在项目根目录
package main

import "embed"

//go:embed data/game_config.yaml
var dataFS embed.FS
