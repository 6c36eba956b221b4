package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/decker502/halfarc/pkg/embedded"
)

// DefaultStageConfigPath 内置默认配置在嵌入文件系统中的路径
const DefaultStageConfigPath = "data/stage.yaml"

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid stage config")

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // 游戏目标 TPS（Ticks Per Second）
}

// ChainConfig 节点链配置
type ChainConfig struct {
	Nodes int `yaml:"nodes"` // 节点数
	Lines int `yaml:"lines"` // 每个节点的线段数
}

// AnimationConfig 动画步进配置
type AnimationConfig struct {
	Gap        float64 `yaml:"gap"`         // 每个 tick 的基础步长
	Div        float64 `yaml:"div"`         // 镜像插值分界点
	IntervalMs int     `yaml:"interval_ms"` // tick 间隔（毫秒）
}

// StyleConfig 绘制样式
type StyleConfig struct {
	SizeFactor   float64 `yaml:"size_factor"`   // 半径 = 间距 / SizeFactor
	StrokeFactor float64 `yaml:"stroke_factor"` // 线宽 = min(w, h) / StrokeFactor
	ForeColor    string  `yaml:"fore_color"`
	BackColor    string  `yaml:"back_color"`
}

// StageConfig 舞台完整配置
type StageConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Chain     ChainConfig     `yaml:"chain"`
	Animation AnimationConfig `yaml:"animation"`
	Style     StyleConfig     `yaml:"style"`
}

// DefaultStageConfig 返回默认配置
func DefaultStageConfig() *StageConfig {
	cfg := &StageConfig{}
	cfg.applyDefaults()
	return cfg
}

// LoadStageConfig 加载舞台配置
//
// path 为空时读取内置的 data/stage.yaml；内置资源也不可用时直接使用默认值。
// 缺省字段会被填充默认值，随后执行校验。
func LoadStageConfig(path string) (*StageConfig, error) {
	var (
		data []byte
		err  error
	)

	switch {
	case path != "":
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	case embedded.Exists(DefaultStageConfigPath):
		data, err = embedded.ReadFile(DefaultStageConfigPath)
		if err != nil {
			return nil, fmt.Errorf("读取内置配置失败: %w", err)
		}
	default:
		return DefaultStageConfig(), nil
	}

	return ParseStageConfig(data)
}

// ParseStageConfig 解析 YAML 配置
func ParseStageConfig(data []byte) (*StageConfig, error) {
	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 为零值字段设置默认值
func (c *StageConfig) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 800
	}
	if c.Window.Height == 0 {
		c.Window.Height = 600
	}
	if c.Window.Title == "" {
		c.Window.Title = "Half Arc Line Expander"
	}
	if c.Window.TPS == 0 {
		c.Window.TPS = 60
	}
	if c.Chain.Nodes == 0 {
		c.Chain.Nodes = 5
	}
	if c.Chain.Lines == 0 {
		c.Chain.Lines = 2
	}
	if c.Animation.Gap == 0 {
		c.Animation.Gap = 0.05
	}
	if c.Animation.Div == 0 {
		c.Animation.Div = 0.51
	}
	if c.Animation.IntervalMs == 0 {
		c.Animation.IntervalMs = 50
	}
	if c.Style.SizeFactor == 0 {
		c.Style.SizeFactor = 3
	}
	if c.Style.StrokeFactor == 0 {
		c.Style.StrokeFactor = 90
	}
	if c.Style.ForeColor == "" {
		c.Style.ForeColor = "#673AB7"
	}
	if c.Style.BackColor == "" {
		c.Style.BackColor = "#212121"
	}
}

// Validate 校验配置取值
// 返回的错误都包装了 ErrInvalidConfig
func (c *StageConfig) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS < 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Window.TPS)
	}
	if c.Chain.Nodes < 1 {
		return fmt.Errorf("%w: nodes must be positive, got %d", ErrInvalidConfig, c.Chain.Nodes)
	}
	if c.Chain.Lines < 1 {
		return fmt.Errorf("%w: lines must be positive, got %d", ErrInvalidConfig, c.Chain.Lines)
	}
	// 步长不超过 1，保证单次 tick 不会越过整段进度
	if c.Animation.Gap <= 0 || c.Animation.Gap > 1 {
		return fmt.Errorf("%w: gap must be in (0, 1], got %v", ErrInvalidConfig, c.Animation.Gap)
	}
	if c.Animation.Div <= 0 {
		return fmt.Errorf("%w: div must be positive, got %v", ErrInvalidConfig, c.Animation.Div)
	}
	if c.Animation.IntervalMs < 0 {
		return fmt.Errorf("%w: interval_ms %d", ErrInvalidConfig, c.Animation.IntervalMs)
	}
	if c.Style.SizeFactor <= 0 || c.Style.StrokeFactor <= 0 {
		return fmt.Errorf("%w: size_factor and stroke_factor must be positive", ErrInvalidConfig)
	}
	if _, err := colorful.Hex(c.Style.ForeColor); err != nil {
		return fmt.Errorf("%w: fore_color %q: %v", ErrInvalidConfig, c.Style.ForeColor, err)
	}
	if _, err := colorful.Hex(c.Style.BackColor); err != nil {
		return fmt.Errorf("%w: back_color %q: %v", ErrInvalidConfig, c.Style.BackColor, err)
	}
	return nil
}

// Interval 返回 tick 间隔
func (c *StageConfig) Interval() time.Duration {
	return time.Duration(c.Animation.IntervalMs) * time.Millisecond
}

// ForeColor 前景色
// 颜色在 Validate 中已校验，解析失败时退回白色
func (c *StageConfig) ForeColor() color.Color {
	return parseColor(c.Style.ForeColor, color.White)
}

// BackColor 背景色
func (c *StageConfig) BackColor() color.Color {
	return parseColor(c.Style.BackColor, color.Black)
}

func parseColor(hex string, fallback color.Color) color.Color {
	cf, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
