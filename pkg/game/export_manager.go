package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/archit-roy/interactive-bouquet/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

const (
	// exportsObject is the gdata object holding exported images.
	exportsObject = "exports"
)

// ErrNoExportTarget is reported when neither gdata storage nor an export
// directory is available.
var ErrNoExportTarget = errors.New("no export destination configured")

// ExportResult describes one finished export.
type ExportResult struct {
	Path   string // file written to the export directory, "" when none
	Stored bool   // whether the PNG was saved to gdata storage
	Size   int    // encoded PNG size in bytes
	Err    error
}

// ExportManager turns the composed canvas into a PNG download.
//
// Pixels are read on the game loop goroutine (ReadPixels needs the GPU),
// encoding and storage run on a background goroutine and the result is
// handed back through Pump, like ResourceManager completions.
//
// Storage:
//   - gdata object "exports", property "bouquet.png" (may be nil, degraded mode)
//   - <exportDir>/bouquet.png when exportDir is set
type ExportManager struct {
	gdataManager *gdata.Manager
	exportDir    string

	mu       sync.Mutex
	finished []exportDone
	running  int
	wg       sync.WaitGroup
}

type exportDone struct {
	result ExportResult
	done   func(ExportResult)
}

// NewExportManager creates an export manager.
//
// Parameters:
//   - gdataManager: cross-platform storage, may be nil
//   - exportDir: directory for bouquet.png, "" to skip the file
func NewExportManager(gdataManager *gdata.Manager, exportDir string) *ExportManager {
	return &ExportManager{
		gdataManager: gdataManager,
		exportDir:    exportDir,
	}
}

// Export captures canvas and saves it as bouquet.png. done runs from a later
// Pump with the outcome. Must be called on the game loop goroutine.
func (em *ExportManager) Export(canvas *ebiten.Image, done func(ExportResult)) {
	bounds := canvas.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	canvas.ReadPixels(pixels)

	em.mu.Lock()
	em.running++
	em.mu.Unlock()

	em.wg.Add(1)
	go func() {
		defer em.wg.Done()
		result := em.save(Unpremultiply(pixels, w, h))
		em.mu.Lock()
		em.running--
		em.finished = append(em.finished, exportDone{result: result, done: done})
		em.mu.Unlock()
	}()
}

// Pump delivers finished exports. Call once per frame from the game loop.
func (em *ExportManager) Pump() int {
	em.mu.Lock()
	finished := em.finished
	em.finished = nil
	em.mu.Unlock()

	for _, f := range finished {
		if f.done != nil {
			f.done(f.result)
		}
	}
	return len(finished)
}

// Busy reports whether an export is still being encoded.
func (em *ExportManager) Busy() bool {
	em.mu.Lock()
	defer em.mu.Unlock()
	return em.running > 0
}

// Wait blocks until every started export has finished encoding and writing.
// Results still need a Pump to be delivered.
func (em *ExportManager) Wait() {
	em.wg.Wait()
}

// save encodes img and writes it to every configured destination.
func (em *ExportManager) save(img *image.NRGBA) ExportResult {
	if em.gdataManager == nil && em.exportDir == "" {
		log.Printf("[ExportManager] Export skipped: %v", ErrNoExportTarget)
		return ExportResult{Err: ErrNoExportTarget}
	}

	data, err := EncodePNG(img)
	if err != nil {
		log.Printf("[ExportManager] %v", err)
		return ExportResult{Err: err}
	}

	result := ExportResult{Size: len(data)}

	if em.gdataManager != nil {
		if err := em.gdataManager.SaveObjectProp(exportsObject, config.ExportFileName, data); err != nil {
			result.Err = fmt.Errorf("failed to store export: %w", err)
			log.Printf("[ExportManager] %v", result.Err)
		} else {
			result.Stored = true
		}
	}

	if em.exportDir != "" {
		path := filepath.Join(em.exportDir, config.ExportFileName)
		if err := writeExportFile(path, data); err != nil {
			result.Err = errors.Join(result.Err, err)
			log.Printf("[ExportManager] %v", err)
		} else {
			result.Path = path
		}
	}

	if result.Err == nil {
		log.Printf("[ExportManager] Exported %s (%d bytes, stored=%t, path=%q)",
			config.ExportFileName, result.Size, result.Stored, result.Path)
	}
	return result
}

// LoadExport returns the last export kept in gdata storage.
func (em *ExportManager) LoadExport() ([]byte, error) {
	if em.gdataManager == nil {
		return nil, ErrNoExportTarget
	}
	if !em.gdataManager.ObjectPropExists(exportsObject, config.ExportFileName) {
		return nil, os.ErrNotExist
	}
	data, err := em.gdataManager.LoadObjectProp(exportsObject, config.ExportFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load export: %w", err)
	}
	return data, nil
}

// Unpremultiply converts premultiplied RGBA pixels, as returned by
// ReadPixels, to a straight-alpha NRGBA image.
func Unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", config.ExportFileName, err)
	}
	return buf.Bytes(), nil
}

func writeExportFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
