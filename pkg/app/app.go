// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/halfarc/pkg/config"
	"github.com/decker502/halfarc/pkg/game"
	"github.com/decker502/halfarc/pkg/scenes"
	"github.com/decker502/halfarc/pkg/utils"
)

// AppName 用于 gdata 存储目录
const AppName = "halfarc"

// windowResetDelayFrames 退出全屏后等待的帧数，让窗口管理器有时间处理
const windowResetDelayFrames = 3

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 舞台配置文件路径，为空时使用内置配置
	ConfigPath string
	// Width/Height 覆盖窗口尺寸，0 表示使用存档或配置文件中的尺寸
	Width  int
	Height int
	// TPS 覆盖每秒 tick 数，0 表示使用配置文件
	TPS int
	// Fullscreen 强制全屏启动
	Fullscreen bool
	// LogOutput 日志输出，nil 时为 os.Stderr
	LogOutput io.Writer
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	stageConfig  *config.StageConfig
	cfg          Config
	logger       *log.Logger

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewLogger 创建根 logger
// verbose 时输出 Debug 级别，否则只输出警告及以上
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          AppName,
	})
}

// NewApp 创建并初始化应用
//
// 使用内置配置前，必须先调用 embedded.Init() 初始化嵌入资源；
// 未初始化时退回默认配置。
func NewApp(cfg Config) (*App, error) {
	logger := NewLogger(cfg.LogOutput, cfg.Verbose)

	stageConfig, err := config.LoadStageConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("舞台配置加载失败: %w", err)
	}
	if cfg.TPS > 0 {
		stageConfig.Window.TPS = cfg.TPS
	}
	logger.Debug("config loaded", "path", cfg.ConfigPath, "nodes", stageConfig.Chain.Nodes, "tps", stageConfig.Window.TPS)

	settingsLogger := logger.WithPrefix("Settings")
	settings := game.NewSettingsManager(game.OpenStorage(AppName, settingsLogger), settingsLogger)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewStageScene(stageConfig, logger.WithPrefix("Stage")))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		stageConfig:  stageConfig,
		cfg:          cfg,
		logger:       logger.WithPrefix("App"),
	}, nil
}

// WindowSize 返回启动时的窗口尺寸
// 优先级：命令行覆盖 > 上次保存的尺寸 > 配置文件
func (a *App) WindowSize() (int, int) {
	if a.cfg.Width > 0 && a.cfg.Height > 0 {
		return a.cfg.Width, a.cfg.Height
	}
	return a.settings.WindowSize(a.stageConfig.Window.Width, a.stageConfig.Window.Height)
}

// Fullscreen 返回启动时是否全屏
func (a *App) Fullscreen() bool {
	return a.cfg.Fullscreen || a.settings.GetSettings().Fullscreen
}

// TPS 返回目标 tick 速率
func (a *App) TPS() int {
	return a.stageConfig.Window.TPS
}

// ApplyWindowOptions 在 RunGame 之前设置窗口属性
// 移动端由系统管理窗口，只设置 TPS
func (a *App) ApplyWindowOptions() {
	ebiten.SetTPS(a.TPS())
	if utils.IsMobile() {
		return
	}

	w, h := a.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(a.stageConfig.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(a.Fullscreen())
	ebiten.SetWindowClosingHandled(true)
	a.logger.Debug("window configured", "width", w, "height", h, "fullscreen", a.Fullscreen())
}

// Update 更新逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.saveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			a.logger.Debug("delayed SetWindowSize", "width", w, "height", h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(a.deltaTime())
	return nil
}

// deltaTime 每个 tick 的时长（秒）
func (a *App) deltaTime() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = a.TPS()
	}
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1.0 / float64(tps)
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = windowResetDelayFrames
		a.settings.SetFullscreen(false)
	} else {
		if w, h := ebiten.WindowSize(); w > 0 && h > 0 {
			a.settings.SetWindowSize(w, h)
		}
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
	if err := a.settings.Save(); err != nil {
		a.logger.Warn("failed to save settings", "err", err)
	}
}

// saveOnExit 退出前记录窗口尺寸
func (a *App) saveOnExit() {
	if !ebiten.IsFullscreen() {
		a.settings.SetWindowSize(ebiten.WindowSize())
	}
	if err := a.settings.Save(); err != nil {
		a.logger.Warn("failed to save settings on exit", "err", err)
		return
	}
	a.logger.Debug("settings saved on exit")
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 画布始终与窗口（视口）同尺寸，节点布局随之缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.cfg.Verbose
}
