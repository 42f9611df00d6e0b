package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"os"
	"strings"
	"sync"

	"github.com/archit-roy/interactive-bouquet/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of editor resources.
// It loads and caches sprite images and font faces so each asset is decoded
// only once and reused for every sprite that references it.
//
// Images can be loaded two ways:
//   - LoadImage decodes synchronously on the caller's goroutine.
//   - Resolve decodes on a background goroutine and hands the result back
//     through a callback that runs inside Pump, on the game loop goroutine.
//
// Thread Safety Note:
// Only the completion queue is shared with decoder goroutines and it is
// guarded by a mutex. Everything else (caches, callbacks) is touched from the
// game loop goroutine only, so LoadImage, Resolve, Pump and LoadFont must all
// be called from there.
//
// Usage:
//
//	rm := NewResourceManager()
//	rm.Resolve("assets/flowers/rose.png", func(img *ebiten.Image) {
//	    sprite.Image = img
//	})
//	// every frame:
//	rm.Pump()
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image         // Decoded images: path -> Image
	waiters       map[string][]func(*ebiten.Image) // Callbacks of in-flight decodes: path -> callbacks
	ready         []func()                         // Cache hits due on the next Pump
	fontSource    *text.GoTextFaceSource           // Go Regular, parsed once
	fontFaceCache map[float64]*text.GoTextFace     // Font faces by size

	mu        sync.Mutex
	completed []decodeResult // Finished decodes, filled by decoder goroutines

	// readFile loads raw asset bytes. Replaced in tests.
	readFile func(path string) ([]byte, error)
}

type decodeResult struct {
	path string
	img  image.Image
	err  error
}

// NewResourceManager creates and initializes a new ResourceManager instance
// with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		waiters:       make(map[string][]func(*ebiten.Image)),
		fontFaceCache: make(map[float64]*text.GoTextFace),
		readFile:      readAsset,
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
//
// Parameters:
//   - path: The asset path (e.g., "assets/flowers/rose.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	img, err := rm.decode(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, nil if the
// image has not been loaded yet.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// Resolve requests the image at path and calls done with it from a later
// Pump. Requests for a path that is already being decoded share that decode.
// If the image cannot be loaded the error is logged and done is never called.
//
// Parameters:
//   - path: The asset path.
//   - done: Completion callback, run on the game loop goroutine.
func (rm *ResourceManager) Resolve(path string, done func(img *ebiten.Image)) {
	if img, exists := rm.imageCache[path]; exists {
		rm.ready = append(rm.ready, func() { done(img) })
		return
	}

	if waiting, inFlight := rm.waiters[path]; inFlight {
		rm.waiters[path] = append(waiting, done)
		return
	}
	rm.waiters[path] = []func(*ebiten.Image){done}

	go func() {
		img, err := rm.decode(path)
		rm.mu.Lock()
		rm.completed = append(rm.completed, decodeResult{path: path, img: img, err: err})
		rm.mu.Unlock()
	}()
}

// Pump delivers every completion that became available since the previous
// call. It must be called once per frame from the game loop goroutine.
//
// Returns:
//   - The number of callbacks that ran.
func (rm *ResourceManager) Pump() int {
	delivered := 0

	ready := rm.ready
	rm.ready = nil
	for _, fn := range ready {
		fn()
		delivered++
	}

	rm.mu.Lock()
	completed := rm.completed
	rm.completed = nil
	rm.mu.Unlock()

	for _, res := range completed {
		waiting := rm.waiters[res.path]
		delete(rm.waiters, res.path)

		if res.err != nil {
			log.Printf("[ResourceManager] Failed to load %s: %v", res.path, res.err)
			continue
		}

		img, exists := rm.imageCache[res.path]
		if !exists {
			img = ebiten.NewImageFromImage(res.img)
			rm.imageCache[res.path] = img
		}
		for _, done := range waiting {
			done(img)
			delivered++
		}
	}
	return delivered
}

// Pending reports how many paths are still being decoded.
func (rm *ResourceManager) Pending() int {
	return len(rm.waiters)
}

// LoadFont returns a Go Regular font face of the given size, cached by size.
//
// Parameters:
//   - size: The font size in pixels.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the bundled font cannot be parsed.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// decode reads and decodes an image without touching any ebiten state, so
// it is safe to call from any goroutine.
func (rm *ResourceManager) decode(path string) (image.Image, error) {
	data, err := rm.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// readAsset reads bundled assets when the embedded file systems are
// installed and falls back to the file system otherwise.
func readAsset(path string) ([]byte, error) {
	if embedded.IsInitialized() && (strings.HasPrefix(path, "assets/") || strings.HasPrefix(path, "data/")) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
