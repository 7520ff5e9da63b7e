package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/san-kum/boardlab/internal/render"
)

// Surfaces encodes every surface in c into dir as <prefix>-<n>.<format>
// and returns the written paths in container order.
func Surfaces(c *render.Container, dir, prefix string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var paths []string
	for i, s := range c.Surfaces() {
		path := filepath.Join(dir, fmt.Sprintf("%s-%d.%s", prefix, i, s.Format()))
		if err := writeSurface(path, s); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeSurface(path string, s render.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
