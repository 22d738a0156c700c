package assets

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/followtheleader/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Image names
const (
	Zombie     = "zombie1"
	Enemy      = "enemy"
	Background = "background1"
)

type imageLoader struct {
	cache map[string]*ebiten.Image
}

var loader = &imageLoader{cache: make(map[string]*ebiten.Image)}

// GetImage returns the named sprite image, building it on first use.
func GetImage(name string) *ebiten.Image {
	return loader.mustGet(name)
}

// GetBackground returns the backdrop sized to the scene.
func GetBackground(width, height int) *ebiten.Image {
	key := fmt.Sprintf("%s/%dx%d", Background, width, height)
	if img, ok := loader.cache[key]; ok {
		return img
	}
	img := newBackground(width, height)
	loader.cache[key] = img
	return img
}

func (l *imageLoader) mustGet(name string) *ebiten.Image {
	if img, ok := l.cache[name]; ok {
		return img
	}

	var img *ebiten.Image
	switch name {
	case Zombie:
		img = newZombie(cfg.Zombie.Width, cfg.Zombie.Height, cfg.Zombie.Color)
	case Enemy:
		img = newEnemy(cfg.Enemy.Width, cfg.Enemy.Height, cfg.Enemy.Color)
	default:
		panic(fmt.Sprintf("Image %s not found", name))
	}

	l.cache[name] = img
	return img
}

// newZombie draws a body facing +x with a lighter head at the front, so the heading
// is visible when the sprite rotates.
func newZombie(w, h int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	vector.FillRect(img, 0, fh*0.2, fw*0.7, fh*0.6, c, false)
	head := color.RGBA{R: c.R / 2, G: c.G, B: c.B / 2, A: 255}
	vector.FillRect(img, fw*0.7, fh*0.1, fw*0.3, fh*0.8, head, false)
	// arms reaching forward
	vector.FillRect(img, fw*0.5, 0, fw*0.5, fh*0.12, c, false)
	vector.FillRect(img, fw*0.5, fh*0.88, fw*0.5, fh*0.12, c, false)
	return img
}

func newEnemy(w, h int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	vector.FillRect(img, 0, 0, fw, fh, c, false)
	vector.StrokeRect(img, 1, 1, fw-2, fh-2, 2, cfg.Black, false)
	eye := cfg.White
	vector.FillRect(img, fw*0.15, fh*0.3, fw*0.15, fh*0.2, eye, false)
	return img
}

func newBackground(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(cfg.Background.BaseColor)

	stripe := cfg.Background.StripeWidth
	if stripe <= 0 {
		return img
	}
	for x := 0; x < w; x += stripe * 2 {
		vector.FillRect(img, float32(x), 0, float32(stripe), float32(h), cfg.Background.StripeColor, false)
	}
	return img
}
