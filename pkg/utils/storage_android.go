//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建导出目录
// Android 上 gdata 不会自己创建对象目录，目录不存在时保存会失败
func EnsureStorageDir() error {
	pkg, err := androidPackage()
	if err != nil {
		return err
	}

	dir := exportsDirFor(pkg)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回本应用的私有存储目录，无法识别包名时返回空字符串
func GetStoragePath() string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join(androidDataRoot, pkg)
}

func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", fmt.Errorf("failed to read process name: %w", err)
	}
	return packageFromCmdline(data)
}
