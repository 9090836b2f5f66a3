//go:build !android

package utils

// EnsureStorageDir 桌面和 iOS 上 gdata 自己创建存储目录，这里什么也不做
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 非 Android 平台没有固定的存储路径，返回空字符串
func GetStoragePath() string {
	return ""
}
