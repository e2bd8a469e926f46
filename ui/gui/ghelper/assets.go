package ghelper

import (
	"fmt"
	"hangman/src/base"
	"hangman/src/logx"
	"hangman/ui/gui/gbase/gassets"
	"hangman/ui/gui/gbase/gconf"
	"hangman/ui/gui/ghelper/gfont"
	"hangman/ui/gui/ghelper/gimages"

	"github.com/hajimehoshi/ebiten/v2"
)

// GUIAssetsWorker owns every long-lived drawing resource of a session.
// Font and backgrounds are loaded up front; the themed progress pictures
// are loaded on first use and kept until Close.
type GUIAssetsWorker struct {
	dir         *gassets.Dir
	fonts       *gfont.Fonts
	backgrounds map[gassets.Background]*ebiten.Image
	themed      *gassets.Cache[*ebiten.Image]
	logger      logx.Logger
}

func NewGUIAssetsWorker(cfg *gconf.Config, logger logx.Logger) (*GUIAssetsWorker, error) {
	dir := gassets.NewDir(cfg.AssetsDir)
	f, err := gfont.LoadFonts(dir, cfg.FontFile, cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	bgs, err := gimages.LoadBackgrounds(dir)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	aw := &GUIAssetsWorker{dir: dir, fonts: f, backgrounds: bgs, logger: logger}
	aw.themed = gassets.NewCache(func(name string) (*ebiten.Image, error) {
		return gimages.LoadImage(dir, name)
	}, func(img *ebiten.Image) {
		img.Deallocate()
	})
	logger.Debugf("assets loaded from %s", dir.Root())
	return aw, nil
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Background(b gassets.Background) *ebiten.Image {
	return aw.backgrounds[b]
}

// WrongGuessImage returns the theme picture for the wrong-guess count,
// or nil when the theme has none or the file failed to load.
func (aw *GUIAssetsWorker) WrongGuessImage(t base.Theme, wrong int) *ebiten.Image {
	name := gassets.WrongGuessFile(t, wrong)
	if name == "" {
		return nil
	}
	img, fresh, err := aw.themed.Get(name)
	if err != nil {
		if fresh {
			aw.logger.Errorf("failed to load image: %v", err)
		}
		return nil
	}
	return img
}

func (aw *GUIAssetsWorker) Close() {
	aw.themed.Close()
	for b, img := range aw.backgrounds {
		img.Deallocate()
		delete(aw.backgrounds, b)
	}
	aw.fonts.Close()
	aw.logger.Debug("assets released")
}
