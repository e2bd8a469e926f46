package gimages

import (
	"fmt"
	"hangman/ui/gui/gbase/gassets"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func LoadImage(dir *gassets.Dir, name string) (*ebiten.Image, error) {
	data, err := dir.Open(name)
	if err != nil {
		return nil, err
	}
	defer data.Close()
	img, _, err := ebitenutil.NewImageFromReader(data)
	if err != nil {
		return nil, fmt.Errorf("error decode %s: %w", name, err)
	}
	return img, nil
}

func LoadBackgrounds(dir *gassets.Dir) (map[gassets.Background]*ebiten.Image, error) {
	images := make(map[gassets.Background]*ebiten.Image, len(gassets.Backgrounds))
	for _, b := range gassets.Backgrounds {
		img, err := LoadImage(dir, b.File())
		if err != nil {
			for _, loaded := range images {
				loaded.Deallocate()
			}
			return nil, err
		}
		images[b] = img
	}
	return images, nil
}
