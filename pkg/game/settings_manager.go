package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DisplaySettings 显示相关的用户偏好
// 只保存窗口偏好，动画进度不做持久化
type DisplaySettings struct {
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
	// WindowWidth/WindowHeight 上次退出时的窗口尺寸，0 表示使用配置文件中的尺寸
	WindowWidth  int `yaml:"windowWidth"`
	WindowHeight int `yaml:"windowHeight"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *DisplaySettings {
	return &DisplaySettings{
		Fullscreen: false,
	}
}

// SettingsManager 设置管理器
// 负责显示设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *DisplaySettings
	logger       *log.Logger
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// OpenStorage 打开 gdata 存储
// 失败时返回 nil，调用方应以降级模式运行
func OpenStorage(appName string, logger *log.Logger) *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		if logger != nil {
			logger.Warn("gdata unavailable, settings will not persist", "err", err)
		}
		return nil
	}
	return m
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - logger: 日志，可为 nil
//
// 加载失败不是致命错误，会记录警告并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager, logger *log.Logger) *SettingsManager {
	if logger == nil {
		logger = log.Default()
	}
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		logger:       logger,
	}

	if err := sm.Load(); err != nil {
		sm.logger.Warn("failed to load settings, using defaults", "err", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded DisplaySettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	sm.logger.Debug("settings loaded", "fullscreen", loaded.Fullscreen)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.logger.Debug("settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *DisplaySettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetWindowSize 记录窗口尺寸，非正数的尺寸会被忽略
func (sm *SettingsManager) SetWindowSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	sm.settings.WindowWidth = w
	sm.settings.WindowHeight = h
}

// WindowSize 返回记录的窗口尺寸，未记录时返回 fallback
func (sm *SettingsManager) WindowSize(fallbackW, fallbackH int) (int, int) {
	if sm.settings.WindowWidth <= 0 || sm.settings.WindowHeight <= 0 {
		return fallbackW, fallbackH
	}
	return sm.settings.WindowWidth, sm.settings.WindowHeight
}
