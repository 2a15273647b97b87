package config

import (
	"fmt"
	"log"
	"path/filepath"
)

// IntroSource 当前生效的开场序列配置
//
// 由预设（data/intro.yaml）和可选的外部覆盖文件组合而成。
// 热重载只替换 Current() 的返回值，已经创建的序列器不受影响。
type IntroSource struct {
	presets      *IntroPresets
	presetName   string
	overridePath string
	current      SequenceConfig
}

// NewIntroSource 创建配置来源
//
// 参数:
//   - presets: 已解析的预设集合
//   - presetName: 预设名称，为空时使用 default
//   - overridePath: 覆盖文件路径，为空表示不使用
func NewIntroSource(presets *IntroPresets, presetName, overridePath string) (*IntroSource, error) {
	if presetName == "" {
		presetName = DefaultPresetName
	}
	if _, ok := presets.Get(presetName); !ok {
		return nil, fmt.Errorf("unknown intro preset %q (available: %v)", presetName, presets.Names())
	}

	s := &IntroSource{
		presets:      presets,
		presetName:   presetName,
		overridePath: overridePath,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload 重新组合预设和覆盖文件
// 失败时保留之前的配置
func (s *IntroSource) Reload() error {
	cfg := s.presets.Resolve(s.presetName)
	if s.overridePath != "" {
		loaded, err := LoadSequenceConfig(s.overridePath, cfg)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	s.current = cfg
	log.Printf("[Config] 开场配置: preset=%s override=%q total=%.2fs", s.presetName, s.overridePath, cfg.TotalDuration())
	return nil
}

// Current 返回当前配置
func (s *IntroSource) Current() SequenceConfig {
	return s.current
}

// PresetName 返回当前预设名称
func (s *IntroSource) PresetName() string {
	return s.presetName
}

// OverridePath 返回覆盖文件路径
func (s *IntroSource) OverridePath() string {
	return s.overridePath
}

// WatchDir 返回需要监听的目录，没有覆盖文件时返回空字符串
func (s *IntroSource) WatchDir() string {
	if s.overridePath == "" {
		return ""
	}
	return filepath.Dir(s.overridePath)
}

// Matches 判断变化的文件是否为覆盖文件
func (s *IntroSource) Matches(path string) bool {
	if s.overridePath == "" {
		return false
	}
	a, errA := filepath.Abs(path)
	b, errB := filepath.Abs(s.overridePath)
	if errA != nil || errB != nil {
		return filepath.Clean(path) == filepath.Clean(s.overridePath)
	}
	return a == b
}
