package scene

import (
	"fmt"
	"image"
	imgcolor "image/color"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/colornames"

	"github.com/Faultbox/compose/internal/engine/gpu"
	"github.com/Faultbox/compose/pkg/math"
)

// Atlas is a texture cut into equal square tiles, row by row.
type Atlas struct {
	Texture  *gpu.Texture
	TileSize int
	Columns  int
	Rows     int
}

// LoadAtlas decodes a PNG or BMP file into an atlas.
func LoadAtlas(dev gpu.Device, path string, tileSize int) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening atlas: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding atlas %s: %w", path, err)
	}
	atlas, err := newAtlas(dev, img, tileSize)
	if err != nil {
		return nil, fmt.Errorf("atlas %s (%s): %w", path, format, err)
	}
	return atlas, nil
}

var checkerPalette = []imgcolor.RGBA{
	colornames.Tomato,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Steelblue,
	colornames.Orchid,
	colornames.Sandybrown,
	colornames.Turquoise,
	colornames.Slategray,
}

// CheckerImage draws columns x rows tiles, each a two-tone checker in its
// own palette color with a one pixel dark border.
func CheckerImage(tileSize, columns, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tileSize*columns, tileSize*rows))
	half := tileSize / 2
	if half == 0 {
		half = 1
	}
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < columns; tx++ {
			base := checkerPalette[(ty*columns+tx)%len(checkerPalette)]
			dark := imgcolor.RGBA{R: base.R / 2, G: base.G / 2, B: base.B / 2, A: 255}
			for y := 0; y < tileSize; y++ {
				for x := 0; x < tileSize; x++ {
					c := base
					if (x/half+y/half)%2 == 1 {
						c = dark
					}
					if x == 0 || y == 0 || x == tileSize-1 || y == tileSize-1 {
						c = colornames.Black
					}
					img.SetRGBA(tx*tileSize+x, ty*tileSize+y, c)
				}
			}
		}
	}
	return img
}

// GenerateAtlas builds a 4x4 checker atlas.
func GenerateAtlas(dev gpu.Device, tileSize int) (*Atlas, error) {
	return newAtlas(dev, CheckerImage(tileSize, 4, 4), tileSize)
}

func newAtlas(dev gpu.Device, img image.Image, tileSize int) (*Atlas, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size %d must be positive", tileSize)
	}
	b := img.Bounds()
	cols, rows := b.Dx()/tileSize, b.Dy()/tileSize
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%dx%d image holds no %dpx tile", b.Dx(), b.Dy(), tileSize)
	}
	tex, err := gpu.NewTextureFromImage(dev, img, gpu.FilterNearest)
	if err != nil {
		return nil, err
	}
	return &Atlas{Texture: tex, TileSize: tileSize, Columns: cols, Rows: rows}, nil
}

// Len returns the number of tiles.
func (a *Atlas) Len() int { return a.Columns * a.Rows }

// Tile returns the texel rectangle of tile i.
func (a *Atlas) Tile(i int) math.Rectangle {
	i %= a.Len()
	s := float32(a.TileSize)
	return math.Rectangle{
		X:      float32(i%a.Columns) * s,
		Y:      float32(i/a.Columns) * s,
		Width:  s,
		Height: s,
	}
}

// Release drops the atlas texture reference.
func (a *Atlas) Release() {
	a.Texture.Release()
	a.Texture = nil
}
