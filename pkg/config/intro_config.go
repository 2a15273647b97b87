package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/decker502/tennis/pkg/utils"
	"gopkg.in/yaml.v3"
)

// SequenceConfig 标题开场序列配置
//
// 创建序列时加载一次，之后不再修改。
// 五个阶段时长（秒）+ 主标题起止位置 + 副标题布局参数。
//
// 配置文件位置: data/intro.yaml（内嵌预设），也可以通过 --config 指定外部文件覆盖
type SequenceConfig struct {
	// 阶段时长（秒），0 表示该阶段在下一次求值时立即通过
	BlackHold           float64 `yaml:"blackHold"`           // 黑屏等待
	DropDuration        float64 `yaml:"dropDuration"`        // 主标题下落
	AfterDropPause      float64 `yaml:"afterDropPause"`      // 下落后停顿
	SubtitleRevealPause float64 `yaml:"subtitleRevealPause"` // 副标题显示
	FinalHold           float64 `yaml:"finalHold"`           // 结束前保持

	// 主标题纵向位置（像素）
	StartY float64 `yaml:"startY"`
	EndY   float64 `yaml:"endY"`

	// 副标题布局
	SubtitleY    float64 `yaml:"subtitleY"`
	TitleSize    float64 `yaml:"titleSize"`
	SubtitleSize float64 `yaml:"subtitleSize"`
	Spacing      float64 `yaml:"spacing"`

	// Easing 下落动画缓动名称（outBack / linear / outCubic / outQuad）
	Easing string `yaml:"easing"`
}

const (
	// DefaultPresetName 默认预设名称
	DefaultPresetName = "default"

	// IntroPresetsPath 内嵌预设文件路径
	IntroPresetsPath = "data/intro.yaml"
)

// DefaultSequenceConfig 返回默认配置
//
// 主标题从屏幕上方（-TitleSize）落到画面中线上方：
// EndY = 720/2 - 96 - 20/2 = 254，副标题位于中线下方 SubtitleY = 720/2 + 20/2 = 370
func DefaultSequenceConfig() SequenceConfig {
	return SequenceConfig{
		BlackHold:           1.0,
		DropDuration:        1.0,
		AfterDropPause:      1.0,
		SubtitleRevealPause: 1.0,
		FinalHold:           10.0,
		StartY:              -96.0,
		EndY:                254.0,
		SubtitleY:           370.0,
		TitleSize:           96.0,
		SubtitleSize:        60.0,
		Spacing:             20.0,
		Easing:              utils.EasingOutBack,
	}
}

// Validate 验证配置有效性
//
// 检查：
//   - 所有阶段时长 >= 0
//   - 字号 > 0
//   - 缓动名称可识别
func (c *SequenceConfig) Validate() error {
	durations := []struct {
		name  string
		value float64
	}{
		{"blackHold", c.BlackHold},
		{"dropDuration", c.DropDuration},
		{"afterDropPause", c.AfterDropPause},
		{"subtitleRevealPause", c.SubtitleRevealPause},
		{"finalHold", c.FinalHold},
	}
	for _, d := range durations {
		// !(x >= 0) 同时拦截 NaN
		if !(d.value >= 0) {
			return fmt.Errorf("%s must be >= 0, got %v", d.name, d.value)
		}
	}

	if c.TitleSize <= 0 || c.SubtitleSize <= 0 {
		return fmt.Errorf("font sizes must be > 0, got title=%.1f subtitle=%.1f", c.TitleSize, c.SubtitleSize)
	}

	if _, err := utils.EasingByName(c.Easing); err != nil {
		return err
	}

	return nil
}

// TotalDuration 返回整个序列的理论时长（秒）
func (c *SequenceConfig) TotalDuration() float64 {
	return c.BlackHold + c.DropDuration + c.AfterDropPause + c.SubtitleRevealPause + c.FinalHold
}

// IntroPresets 开场序列预设集合
type IntroPresets struct {
	presets map[string]SequenceConfig
}

// ParseIntroPresets 解析预设 YAML 数据
//
// 每个预设以 DefaultSequenceConfig 为基础，文件中只需写出需要覆盖的字段。
func ParseIntroPresets(data []byte) (*IntroPresets, error) {
	var raw struct {
		Presets map[string]yaml.Node `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse intro presets: %w", err)
	}
	if len(raw.Presets) == 0 {
		return nil, fmt.Errorf("intro presets file contains no presets")
	}

	presets := make(map[string]SequenceConfig, len(raw.Presets))
	for name, node := range raw.Presets {
		cfg := DefaultSequenceConfig()
		if err := node.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode preset %q: %w", name, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid preset %q: %w", name, err)
		}
		presets[name] = cfg
	}

	return &IntroPresets{presets: presets}, nil
}

// Get 获取指定名称的预设
func (p *IntroPresets) Get(name string) (SequenceConfig, bool) {
	cfg, ok := p.presets[name]
	return cfg, ok
}

// Resolve 获取预设，名称为空或不存在时返回 default 预设（再不存在则返回内置默认值）
func (p *IntroPresets) Resolve(name string) SequenceConfig {
	if cfg, ok := p.Get(name); ok {
		return cfg
	}
	if cfg, ok := p.Get(DefaultPresetName); ok {
		return cfg
	}
	return DefaultSequenceConfig()
}

// Names 返回排序后的预设名称列表
func (p *IntroPresets) Names() []string {
	names := make([]string, 0, len(p.presets))
	for name := range p.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseSequenceConfig 解析单个序列配置，未写出的字段取 base 中的值
func ParseSequenceConfig(data []byte, base SequenceConfig) (SequenceConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse sequence config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("invalid sequence config: %w", err)
	}
	return cfg, nil
}

// LoadSequenceConfig 从磁盘加载序列配置覆盖文件
//
// 参数:
//   - path: 配置文件路径
//   - base: 作为默认值的配置（通常是已选择的预设）
func LoadSequenceConfig(path string, base SequenceConfig) (SequenceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read sequence config: %w", err)
	}
	return ParseSequenceConfig(data, base)
}
