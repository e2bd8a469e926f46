package gdraw

import (
	"hangman/ui/gui/gbase"
	"hangman/ui/gui/gbase/gassets"
	"hangman/ui/gui/gctx"
	"hangman/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

// GUIMenuDrawer is the main menu: wallpaper and a prompt, Enter goes on.
type GUIMenuDrawer struct {
	prompt *caption
}

func NewGUIMenuDrawer(ctx *gctx.GUIGameContext) *GUIMenuDrawer {
	fonts := ctx.AssetsWorker.Fonts()
	return &GUIMenuDrawer{
		prompt: newCaption(ctx, "Press Enter to start", fonts.Title, gbase.WindowW/2, gbase.WindowH-200),
	}
}

func (md *GUIMenuDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	return dispatch(ctx.Builder, pollEvents()), nil
}

func (md *GUIMenuDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Palette.Bg)
	ghelper.DrawImageStretched(screen, ctx.AssetsWorker.Background(gassets.MainMenu), gbase.WindowW, gbase.WindowH)
	md.prompt.Draw(ctx, screen)
}

func (md *GUIMenuDrawer) Release() {
	md.prompt.Release()
}
