package vista

import (
	"fmt"
	"image"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"

	_ "image/png"
)

// Custom properties read from TMX image layers. "speed" is the parallax
// speed factor (defaults to 1, world-fixed); "tile" toggles tiling
// (defaults to true).
const (
	tiledPropSpeed = "speed"
	tiledPropTile  = "tile"
)

// ImageLoader resolves an image source path referenced by a TMX map into a
// drawable image.
type ImageLoader func(source string) (*ebiten.Image, error)

// FSImageLoader returns an ImageLoader that decodes images from fsys.
// It works with embed.FS and os.DirFS alike.
func FSImageLoader(fsys fs.FS) ImageLoader {
	return func(source string) (*ebiten.Image, error) {
		f, err := fsys.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open image %s: %w", source, err)
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode image %s: %w", source, err)
		}
		return ebiten.NewImageFromImage(img), nil
	}
}

// LoadTiled adds one parallax layer per image layer of a TMX map, in map
// order. Image sources are resolved relative to the TMX file's directory
// through loadImage; layer offsets become static world anchors. Returns the
// added layers. On error no layers are added.
func (p *ParallaxBackground) LoadTiled(fsys fs.FS, tmxPath string, loadImage ImageLoader) ([]*ParallaxLayer, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	type layerSpec struct {
		img      *ebiten.Image
		speed    float64
		tileMode bool
		offset   Vec2
	}

	dir := path.Dir(tmxPath)
	specs := make([]layerSpec, 0, len(m.ImageLayers))
	for _, il := range m.ImageLayers {
		if il.Image == nil || il.Image.Source == "" {
			continue
		}
		img, err := loadImage(path.Join(dir, il.Image.Source))
		if err != nil {
			return nil, fmt.Errorf("image layer %s: %w", il.Name, err)
		}

		speed := 1.0
		if s := il.Properties.GetString(tiledPropSpeed); s != "" {
			speed = il.Properties.GetFloat(tiledPropSpeed)
		}
		tileMode := true
		if s := il.Properties.GetString(tiledPropTile); s != "" {
			tileMode = il.Properties.GetBool(tiledPropTile)
		}

		specs = append(specs, layerSpec{
			img:      img,
			speed:    speed,
			tileMode: tileMode,
			offset:   Vec2{float64(il.OffsetX), float64(il.OffsetY)},
		})
	}

	added := make([]*ParallaxLayer, 0, len(specs))
	for _, s := range specs {
		added = append(added, p.AddLayer(s.img, s.speed, s.tileMode, s.offset))
	}
	return added, nil
}
