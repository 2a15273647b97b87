//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建 /data/data/{package}/saves
//
// gdata 在 Android 上不会预先创建子目录，目录不可写时设置无法保存。
func EnsureStorageDir() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to detect Android app: %w", err)
	}

	// cmdline 以 NUL 分隔，第一段是包名
	pkg := string(bytes.TrimSpace(bytes.SplitN(cmdline, []byte{0}, 2)[0]))
	if pkg == "" {
		return fmt.Errorf("failed to detect Android app: empty /proc/self/cmdline")
	}

	savesDir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(savesDir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	probe := filepath.Join(savesDir, ".write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	return os.Remove(probe)
}
