package config

import (
	"os"
	"path/filepath"
	"testing"
)

func mustPresets(t *testing.T) *IntroPresets {
	t.Helper()
	presets, err := ParseIntroPresets([]byte(testPresetsYAML))
	if err != nil {
		t.Fatalf("ParseIntroPresets() error: %v", err)
	}
	return presets
}

// TestNewIntroSource 测试预设选择
func TestNewIntroSource(t *testing.T) {
	presets := mustPresets(t)

	src, err := NewIntroSource(presets, "", "")
	if err != nil {
		t.Fatalf("NewIntroSource() error: %v", err)
	}
	if src.PresetName() != DefaultPresetName || src.Current().FinalHold != 10 {
		t.Errorf("空名称应使用 default 预设: %s %+v", src.PresetName(), src.Current())
	}
	if src.WatchDir() != "" || src.Matches("intro.yaml") {
		t.Error("没有覆盖文件时不应监听")
	}

	if _, err := NewIntroSource(presets, "turbo", ""); err == nil {
		t.Error("未知预设应返回错误")
	}
}

// TestIntroSourceReload 测试覆盖文件重载
func TestIntroSourceReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	os.WriteFile(path, []byte("endY: 200\n"), 0644)

	src, err := NewIntroSource(mustPresets(t), "demo", path)
	if err != nil {
		t.Fatalf("NewIntroSource() error: %v", err)
	}
	if src.Current().EndY != 200 || src.Current().StartY != 520 {
		t.Errorf("覆盖应基于 demo 预设: %+v", src.Current())
	}
	if src.WatchDir() != dir {
		t.Errorf("WatchDir() = %q, 期望 %q", src.WatchDir(), dir)
	}
	if !src.Matches(filepath.Join(dir, ".", "override.yaml")) {
		t.Error("Matches 应识别覆盖文件")
	}
	if src.Matches(filepath.Join(dir, "other.yaml")) {
		t.Error("Matches 不应识别其他文件")
	}

	// 修改后重载
	os.WriteFile(path, []byte("endY: 180\n"), 0644)
	if err := src.Reload(); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	if src.Current().EndY != 180 {
		t.Errorf("重载后 EndY = %v", src.Current().EndY)
	}

	// 无效内容保留之前的配置
	os.WriteFile(path, []byte("finalHold: -1\n"), 0644)
	if err := src.Reload(); err == nil {
		t.Error("无效覆盖应返回错误")
	}
	if src.Current().EndY != 180 {
		t.Errorf("失败后应保留之前的配置，EndY = %v", src.Current().EndY)
	}
}

// TestNewIntroSource_BadOverride 测试启动时覆盖文件无效
func TestNewIntroSource_BadOverride(t *testing.T) {
	if _, err := NewIntroSource(mustPresets(t), "", filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("覆盖文件不存在应返回错误")
	}
}
