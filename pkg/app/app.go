// Package app 提供编辑器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/archit-roy/interactive-bouquet/pkg/game"
	"github.com/archit-roy/interactive-bouquet/pkg/scenes"
	"github.com/archit-roy/interactive-bouquet/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName 是 gdata 存储使用的应用名
const AppName = "interactive_bouquet"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ExportDir 导出 bouquet.png 的目录，为空则只保存到 gdata 存储
	ExportDir string
	// CatalogPath 目录配置文件路径，为空则使用内置的 data/catalog.yaml
	CatalogPath string
	// Seed 新花朵位置的随机种子，0 表示使用当前时间
	Seed int64
}

// App 是编辑器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	catalogPath := cfg.CatalogPath
	if catalogPath == "" {
		catalogPath = config.DefaultCatalogPath
	}
	catalog, err := config.LoadCatalog(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("目录配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载目录配置: %s (%d flowers, %d vases)", catalogPath, len(catalog.Flowers), len(catalog.Vases))

	exportDir := cfg.ExportDir
	if utils.IsMobile() && exportDir != "" {
		log.Printf("[App] Export directory ignored on mobile: %s", exportDir)
		exportDir = ""
	}

	resourceManager := game.NewResourceManager()
	exporter := game.NewExportManager(openStorage(), exportDir)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Placement seed: %d", seed)

	editorScene, err := scenes.NewEditorScene(resourceManager, exporter, catalog, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("编辑器场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(editorScene)

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// openStorage 打开 gdata 存储
// 失败时返回 nil，导出只写入导出目录（降级模式）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, exports go to the export directory only: %v", err)
		return nil
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	return manager
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close 等待后台任务（导出）结束，在 RunGame 返回后调用
func (a *App) Close() {
	a.sceneManager.Close()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
