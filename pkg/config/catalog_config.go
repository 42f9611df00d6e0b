package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/archit-roy/interactive-bouquet/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogPath is the bundled catalog file.
const DefaultCatalogPath = "data/catalog.yaml"

// CatalogItem is one selectable sprite of the catalog.
type CatalogItem struct {
	Name string `yaml:"name"` // display name, unique within its list
	Path string `yaml:"path"` // asset path, e.g. "assets/flowers/rose.png"
}

// CanvasConfig holds the appearance of the composition frame.
type CanvasConfig struct {
	Background   string `yaml:"background"`   // "#rrggbb" or "#rrggbbaa"
	CaptionColor string `yaml:"captionColor"` // "#rrggbb" or "#rrggbbaa"
}

// CatalogConfig is the catalog of flowers and vases offered to the user.
type CatalogConfig struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Flowers []CatalogItem `yaml:"flowers"`
	Vases   []CatalogItem `yaml:"vases"`
}

// LoadCatalog reads and validates a catalog file. Paths under "data/" are
// read from the bundled resources when they are available, anything else
// from the file system.
func LoadCatalog(path string) (*CatalogConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(data []byte) (*CatalogConfig, error) {
	var catalog CatalogConfig
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if catalog.Canvas.Background == "" {
		catalog.Canvas.Background = "#3a3f58"
	}
	if catalog.Canvas.CaptionColor == "" {
		catalog.Canvas.CaptionColor = "#ffffff"
	}

	if err := validateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog config: %w", err)
	}
	return &catalog, nil
}

// BackgroundColor returns the parsed canvas background color.
func (c *CatalogConfig) BackgroundColor() color.RGBA {
	col, _ := ParseHexColor(c.Canvas.Background)
	return col
}

// CaptionColor returns the parsed caption color.
func (c *CatalogConfig) CaptionColor() color.RGBA {
	col, _ := ParseHexColor(c.Canvas.CaptionColor)
	return col
}

func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && strings.HasPrefix(path, "data/") {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// validateCatalog checks that both lists are usable.
func validateCatalog(catalog *CatalogConfig) error {
	if len(catalog.Flowers) == 0 {
		return fmt.Errorf("flowers cannot be empty")
	}
	if len(catalog.Vases) == 0 {
		return fmt.Errorf("vases cannot be empty")
	}
	if err := validateItems("flowers", catalog.Flowers); err != nil {
		return err
	}
	if err := validateItems("vases", catalog.Vases); err != nil {
		return err
	}
	if _, err := ParseHexColor(catalog.Canvas.Background); err != nil {
		return fmt.Errorf("canvas.background: %w", err)
	}
	if _, err := ParseHexColor(catalog.Canvas.CaptionColor); err != nil {
		return fmt.Errorf("canvas.captionColor: %w", err)
	}
	return nil
}

func validateItems(list string, items []CatalogItem) error {
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if item.Name == "" {
			return fmt.Errorf("%s[%d]: name cannot be empty", list, i)
		}
		if item.Path == "" {
			return fmt.Errorf("%s[%d] (%s): path cannot be empty", list, i, item.Name)
		}
		if seen[item.Name] {
			return fmt.Errorf("%s[%d]: duplicate name %q", list, i, item.Name)
		}
		seen[item.Name] = true
	}
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
