// halfarc 绘制一排半弧线段，点击屏幕逐个播放展开动画。
//
// Usage:
//
//	halfarc [--config path] [--verbose] [--width w --height h] [--tps n] [--fullscreen]
//
// 按 F11 切换全屏，Esc 退出。
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/halfarc/pkg/app"
	"github.com/decker502/halfarc/pkg/embedded"
)

var (
	flagConfig     string
	flagVerbose    bool
	flagWidth      int
	flagHeight     int
	flagTPS        int
	flagFullscreen bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "halfarc",
	Short: "Half arc line expander animation",
	Long: `Draws a row of rotating half-arc line segments.
Each click or tap plays the animation of the next node; the sequence
walks forward to the last node and then back again.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 初始化嵌入资源（必须在任何资源加载之前）
		embedded.Init(dataFS)

		gameApp, err := app.NewApp(app.Config{
			Verbose:    flagVerbose,
			ConfigPath: flagConfig,
			Width:      flagWidth,
			Height:     flagHeight,
			TPS:        flagTPS,
			Fullscreen: flagFullscreen,
		})
		if err != nil {
			return fmt.Errorf("初始化失败: %w", err)
		}

		gameApp.ApplyWindowOptions()
		return ebiten.RunGame(gameApp)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Stage config YAML (default: built-in data/stage.yaml)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width (0 = saved or configured)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height (0 = saved or configured)")
	rootCmd.Flags().IntVar(&flagTPS, "tps", 0, "Ticks per second (0 = configured)")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen mode")
}
