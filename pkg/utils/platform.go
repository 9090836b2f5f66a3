//go:build !mobile

package utils

import "os"

// IsMobile 是否按移动端处理输入
// 桌面端默认为 false，设置 CONGA_MOBILE_EMULATE=1 可以在桌面上模拟只有触摸的环境
func IsMobile() bool {
	return os.Getenv("CONGA_MOBILE_EMULATE") == "1"
}
