package assets

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LoadImage декодирует root/path. При пустом root ничего не находится.
func LoadImage(root, path string) (image.Image, error) {
	if root == "" {
		return nil, errors.Errorf("no asset root for %s", path)
	}
	f, err := os.Open(filepath.Join(root, filepath.FromSlash(path)))
	if err != nil {
		return nil, errors.Wrapf(err, "open texture %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode texture %s", path)
	}
	return img, nil
}
