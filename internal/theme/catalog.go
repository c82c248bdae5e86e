package theme

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Catalog serves the themes available for configuration: every *.json file in
// the data directory plus user-imported overlays. Themes are read-only inputs
// to the game, the catalog never mutates them.
type Catalog struct {
	mu       sync.RWMutex
	dataDir  string
	imported []Theme
	logger   *zap.Logger
}

func NewCatalog(dataDir string, logger *zap.Logger) *Catalog {
	return &Catalog{dataDir: dataDir, logger: logger}
}

// Themes returns imported themes first, then the file-backed catalog. The data
// directory is re-read on every call so dropped-in files show up without a
// restart. Files that fail to parse are skipped individually.
func (c *Catalog) Themes() ([]Theme, error) {
	entries, err := os.ReadDir(c.dataDir)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	themes := make([]Theme, len(c.imported))
	copy(themes, c.imported)
	c.mu.RUnlock()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(c.dataDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			c.logger.Warn("skipping unreadable theme file", zap.String("path", path), zap.Error(err))
			continue
		}
		t, err := NormalizeOne(data)
		if err != nil {
			c.logger.Warn("skipping malformed theme file", zap.String("path", path), zap.Error(err))
			continue
		}
		themes = append(themes, t)
	}
	return themes, nil
}

// Import normalizes a raw dataset array and merges it ahead of the file-backed
// themes. Returns the themes that survived normalization.
func (c *Catalog) Import(data []byte) ([]Theme, error) {
	themes, err := Normalize(data)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.imported = append(c.imported, themes...)
	c.mu.Unlock()
	c.logger.Info("imported custom themes", zap.Int("count", len(themes)))
	return themes, nil
}

// Find looks a theme up by name across overlays and files.
func (c *Catalog) Find(name string) (Theme, bool) {
	themes, err := c.Themes()
	if err != nil {
		return Theme{}, false
	}
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}
