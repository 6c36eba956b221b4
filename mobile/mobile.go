//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.halfarc -o build/android/halfarc.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/HalfArc.xcframework -v ./mobile
//
// 移动端不嵌入配置文件，使用默认舞台配置。
package mobile

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/halfarc/pkg/app"
)

func init() {
	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
	})
	if err != nil {
		log.NewWithOptions(os.Stderr, log.Options{Prefix: app.AppName}).Fatal("初始化失败", "err", err)
	}
	gameApp.ApplyWindowOptions()

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
