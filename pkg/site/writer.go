package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// WritePages writes every page into dir. Each file is replaced atomically, so
// readers never observe a truncated page.
func WritePages(dir string, pages []Page) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, p := range pages {
		path := filepath.Join(dir, p.Name)
		if err := atomic.WriteFile(path, strings.NewReader(p.HTML)); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
