package gctx

import (
	"hangman/src"
	"hangman/src/logx"
	"hangman/ui/gui/gbase"
	"hangman/ui/gui/gbase/gconf"
	"hangman/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder      *src.GameBuilder
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	Palette      gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(b *src.GameBuilder, a *ghelper.GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder:      b,
		AssetsWorker: a,
		Config:       c,
		Palette:      gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
}
