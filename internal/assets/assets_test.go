package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBeamTexture(t *testing.T) {
	img := GenerateBeamTexture(BeamTextureWidth, BeamTextureHeight)
	require.Equal(t, image.Rect(0, 0, 16, 64), img.Bounds())

	edge := img.RGBAAt(0, 0)
	centre := img.RGBAAt(BeamTextureWidth/2, 0)
	assert.Less(t, edge.A, centre.A)

	// Симметрично относительно центральной линии.
	for x := 0; x < BeamTextureWidth/2; x++ {
		assert.Equal(t, img.RGBAAt(x, 10), img.RGBAAt(BeamTextureWidth-1-x, 10))
	}
}

func TestLoadImage(t *testing.T) {
	_, err := LoadImage("", "textures/entity/x.png")
	assert.Error(t, err)

	root := t.TempDir()
	dir := filepath.Join(root, "textures", "entity")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	f, err := os.Create(filepath.Join(dir, "x.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, GenerateBeamTexture(4, 4)))
	require.NoError(t, f.Close())

	img, err := LoadImage(root, "textures/entity/x.png")
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = LoadImage(root, "textures/entity/missing.png")
	assert.Error(t, err)
}
