package assets

import (
	"image"
	"image/color"
	"math"
)

const (
	BeamTextureWidth  = 16
	BeamTextureHeight = 64
)

// GenerateBeamTexture рисует запасную текстуру луча: яркое ядро, к краям
// уходящее в прозрачность, и полосы вдоль V, чтобы было видно прокрутку.
// По вертикали тайлится без шва.
func GenerateBeamTexture(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		band := 0.75 + 0.25*math.Sin(2*math.Pi*2*float64(y)/float64(h))
		for x := 0; x < w; x++ {
			// 0 по краям, 1 на центральной линии.
			u := (float64(x) + 0.5) / float64(w)
			core := math.Max(0, 1-math.Abs(u-0.5)*2)
			a := math.Pow(core, 1.5) * band
			white := math.Pow(core, 4)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * a * (0.55 + 0.45*white)),
				G: uint8(255 * a * (0.85 + 0.15*white)),
				B: uint8(255 * a),
				A: uint8(255 * a),
			})
		}
	}
	return img
}
