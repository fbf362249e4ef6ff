package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"gdikit/internal/gdi"
	"gdikit/internal/hotkey"
)

// EnvConfigPath 覆盖配置文件路径的环境变量
const EnvConfigPath = "GDIKIT_CONFIG"

// Hotkey 停止绘制的快捷键
type Hotkey struct {
	Modifiers []string `yaml:"modifiers"` // ctrl, alt, shift, win
	Key       string   `yaml:"key"`       // 主键，如 q, esc, f12
}

// Fill 全屏填充
type Fill struct {
	Color string `yaml:"color"` // 十六进制颜色，如 #0000ff
}

// Blit 全屏拉伸位图
type Blit struct {
	Image     string `yaml:"image"`     // 图片路径
	MaxWidth  int    `yaml:"maxWidth"`  // 上传前缩小，0 表示不限制
	MaxHeight int    `yaml:"maxHeight"` // 同上
}

// Behavior 行为配置
type Behavior struct {
	ShowNotification bool `yaml:"showNotification"` // 绘制失败时显示通知
	ShowTray         bool `yaml:"showTray"`         // 显示托盘退出菜单
}

// Log 日志配置
type Log struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // 为空时输出到标准错误
}

// Config 主配置结构
type Config struct {
	Hotkey   Hotkey   `yaml:"hotkey"`
	Fill     Fill     `yaml:"fill"`
	Blit     Blit     `yaml:"blit"`
	Behavior Behavior `yaml:"behavior"`
	Log      Log      `yaml:"log"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Hotkey: Hotkey{
			Modifiers: []string{"ctrl", "alt"},
			Key:       "q",
		},
		Fill: Fill{
			Color: "#0000ff",
		},
		Behavior: Behavior{
			ShowNotification: true,
			ShowTray:         true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// GetConfigPath 获取配置文件路径
func GetConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}

	var configDir string
	if runtime.GOOS == "windows" {
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			homeDir, _ := os.UserHomeDir()
			configDir = filepath.Join(homeDir, "AppData", "Roaming")
		}
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "gdikit", "config.yaml")
}

// Load 加载配置，文件不存在时写入并返回默认配置
func Load() (*Config, error) {
	return LoadFile(GetConfigPath())
}

// LoadFile 从指定路径加载配置
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		_ = cfg.SaveFile(path)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("无法解析配置文件 %s: %w", path, err)
	}

	cfg.Validate()
	return cfg, nil
}

// Validate 验证并修正配置值
func (c *Config) Validate() {
	defaults := DefaultConfig()

	if _, err := ParseColor(c.Fill.Color); err != nil {
		c.Fill.Color = defaults.Fill.Color
	}

	if c.Blit.MaxWidth < 0 {
		c.Blit.MaxWidth = 0
	}
	if c.Blit.MaxHeight < 0 {
		c.Blit.MaxHeight = 0
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		c.Log.Level = defaults.Log.Level
	}

	if c.Hotkey.Key == "" {
		c.Hotkey = defaults.Hotkey
	}

	validatedMods := []string{}
	for _, mod := range c.Hotkey.Modifiers {
		if canon, ok := hotkey.CanonicalModifier(strings.ToLower(strings.TrimSpace(mod))); ok {
			validatedMods = append(validatedMods, canon)
		}
	}
	if len(validatedMods) == 0 {
		c.Hotkey.Modifiers = defaults.Hotkey.Modifiers
	} else {
		c.Hotkey.Modifiers = validatedMods
	}
}

// Save 保存到默认路径
func (c *Config) Save() error {
	return c.SaveFile(GetConfigPath())
}

// SaveFile 保存到指定路径
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// FillColor 解析填充颜色
func (c *Config) FillColor() (gdi.Color, error) {
	return ParseColor(c.Fill.Color)
}

// GetHotkeyString 获取快捷键的字符串表示
func (c *Config) GetHotkeyString() string {
	parts := append([]string{}, c.Hotkey.Modifiers...)
	parts = append(parts, c.Hotkey.Key)
	return strings.Join(parts, "+")
}

// ParseColor 解析十六进制颜色（#rgb 或 #rrggbb）
func ParseColor(s string) (gdi.Color, error) {
	col, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return gdi.Color{}, fmt.Errorf("无效的颜色 %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return gdi.RGB(r, g, b), nil
}

// Logger 按配置创建日志，返回的关闭函数用于关闭日志文件
func (c *Config) Logger() (*logrus.Logger, func() error, error) {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if c.Log.File == "" {
		return log, func() error { return nil }, nil
	}

	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("无法打开日志文件: %w", err)
	}
	log.SetOutput(f)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return log, f.Close, nil
}
