package main

import (
	"flag"
	"log"

	"github.com/archit-roy/interactive-bouquet/pkg/app"
	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/archit-roy/interactive-bouquet/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	exportDir := flag.String("export-dir", ".", "directory for bouquet.png (empty: gdata storage only)")
	catalogPath := flag.String("catalog", config.DefaultCatalogPath, "catalog yaml (data/ paths are read from the embedded resources)")
	seed := flag.Int64("seed", 0, "placement seed for new flowers (0: time based)")
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	bouquetApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ExportDir:   *exportDir,
		CatalogPath: *catalogPath,
		Seed:        *seed,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Interactive Bouquet")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	runErr := ebiten.RunGame(bouquetApp)
	bouquetApp.Close()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
