package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/halfarc/pkg/scenes"
)

// isolateHome 让 gdata 写入临时目录
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestNewAppDefaults(t *testing.T) {
	isolateHome(t)

	a, err := NewApp(Config{LogOutput: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	if w, h := a.WindowSize(); w != 800 || h != 600 {
		t.Errorf("WindowSize: got %dx%d, want 800x600", w, h)
	}
	if a.Fullscreen() {
		t.Error("Fullscreen: got true, want false")
	}
	if a.TPS() != 60 {
		t.Errorf("TPS: got %d, want 60", a.TPS())
	}
	if _, ok := a.GetSceneManager().GetCurrentScene().(*scenes.StageScene); !ok {
		t.Error("current scene should be the stage scene")
	}
}

// TestNewAppOverrides 命令行参数覆盖配置
func TestNewAppOverrides(t *testing.T) {
	isolateHome(t)

	a, err := NewApp(Config{
		Width:      1280,
		Height:     720,
		TPS:        30,
		Fullscreen: true,
		Verbose:    true,
		LogOutput:  &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	if w, h := a.WindowSize(); w != 1280 || h != 720 {
		t.Errorf("WindowSize: got %dx%d, want 1280x720", w, h)
	}
	if !a.Fullscreen() || a.TPS() != 30 || !a.IsVerbose() {
		t.Errorf("overrides not applied: fullscreen=%v tps=%d verbose=%v", a.Fullscreen(), a.TPS(), a.IsVerbose())
	}
}

func TestNewAppBadConfig(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("chain:\n  nodes: -3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := NewApp(Config{ConfigPath: path, LogOutput: &bytes.Buffer{}}); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestLayoutFollowsViewport(t *testing.T) {
	isolateHome(t)

	a, err := NewApp(Config{LogOutput: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	if w, h := a.Layout(1024, 768); w != 1024 || h != 768 {
		t.Errorf("Layout: got %dx%d, want 1024x768", w, h)
	}
}

// TestNewLoggerLevel verbose 控制 Debug 输出
func TestNewLoggerLevel(t *testing.T) {
	var quiet, loud bytes.Buffer
	NewLogger(&quiet, false).Debug("hidden")
	NewLogger(&loud, true).Debug("shown")

	if quiet.Len() != 0 {
		t.Errorf("non-verbose logger wrote debug output: %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "shown") {
		t.Errorf("verbose logger missing debug output: %q", loud.String())
	}
}
