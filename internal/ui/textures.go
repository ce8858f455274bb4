// internal/ui/textures.go
package ui

import (
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"master-quest/internal/assets"
)

// TextureManager загружает текстуры по пути ресурса и кэширует их. Если
// файла нет, используется генератор, если он известен.
type TextureManager struct {
	root       string
	textures   map[string]*ebiten.Image
	generators map[string]func() image.Image
	logger     *slog.Logger
}

// NewTextureManager ищет файлы текстур в root.
func NewTextureManager(root string, logger *slog.Logger) *TextureManager {
	return &TextureManager{
		root:       root,
		textures:   make(map[string]*ebiten.Image),
		generators: make(map[string]func() image.Image),
		logger:     logger,
	}
}

// SetFallback регистрирует генератор для path.
func (m *TextureManager) SetFallback(path string, gen func() image.Image) {
	m.generators[path] = gen
}

// Get возвращает текстуру для path, загружая ее при первом обращении.
func (m *TextureManager) Get(path string) (*ebiten.Image, error) {
	if tex, ok := m.textures[path]; ok {
		return tex, nil
	}
	img, err := assets.LoadImage(m.root, path)
	if err != nil {
		gen, ok := m.generators[path]
		if !ok {
			return nil, err
		}
		m.logger.Debug("using generated texture", "path", path, "reason", err)
		img = gen()
	}
	tex := ebiten.NewImageFromImage(img)
	m.textures[path] = tex
	return tex, nil
}

// Cleanup освобождает все закэшированные текстуры.
func (m *TextureManager) Cleanup() {
	for path, tex := range m.textures {
		tex.Deallocate()
		delete(m.textures, path)
	}
}
