package gdraw

import (
	"fmt"
	"hangman/src/base"
	"hangman/ui/gui/gbase"
	"hangman/ui/gui/gbase/gassets"
	"hangman/ui/gui/gctx"
	"hangman/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

// GUIThemeDrawer lists the themes; digits 1..3 start a round.
type GUIThemeDrawer struct {
	lines []*caption
}

func NewGUIThemeDrawer(ctx *gctx.GUIGameContext) *GUIThemeDrawer {
	fonts := ctx.AssetsWorker.Fonts()
	td := &GUIThemeDrawer{}
	y := gbase.WindowH/2 - 160
	td.lines = append(td.lines, newCaption(ctx, "Choose a theme", fonts.Title, gbase.WindowW/2, y))
	for i, t := range base.Themes {
		y += 110
		label := fmt.Sprintf("%d   %s", i+1, t.Title())
		td.lines = append(td.lines, newCaption(ctx, label, fonts.Title, gbase.WindowW/2, y))
	}
	return td
}

func (td *GUIThemeDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	next := dispatch(ctx.Builder, pollEvents())
	if next == ScenePlay {
		ctx.Logx.Infof("theme selected: %s", ctx.Builder.Theme())
	}
	return next, nil
}

func (td *GUIThemeDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Palette.Bg)
	ghelper.DrawImageStretched(screen, ctx.AssetsWorker.Background(gassets.ThemeMenu), gbase.WindowW, gbase.WindowH)
	for _, l := range td.lines {
		l.Draw(ctx, screen)
	}
}

func (td *GUIThemeDrawer) Release() {
	for _, l := range td.lines {
		l.Release()
	}
}
