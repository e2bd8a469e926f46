package gdraw

import (
	"fmt"
	"hangman/src/base"
	"hangman/ui/gui/gbase"
	"hangman/ui/gui/gctx"
	"hangman/ui/gui/ghelper"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// GUIPlayDrawer shows the running round: progress picture, the word so
// far, the hint and the tries counter.
type GUIPlayDrawer struct {
	theme base.Theme
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	return &GUIPlayDrawer{theme: ctx.Builder.Theme()}
}

func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	return dispatch(ctx.Builder, pollEvents()), nil
}

func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Palette.Bg)
	r := ctx.Builder.Round()
	if r == nil {
		return
	}
	snap := r.Snapshot()
	pd.drawProgress(ctx, screen, snap.WrongGuesses)
	pd.drawWord(ctx, screen, snap.Masked)

	face := ctx.AssetsWorker.Fonts().Normal
	ghelper.DrawText(screen, "Hint: "+snap.Hint, face, gbase.HintX, gbase.HintY, ctx.Palette.Text)
	ghelper.DrawText(screen, fmt.Sprintf("Tries left: %d", snap.TriesRemaining), face, gbase.TriesX, gbase.TriesY, ctx.Palette.Text)
	if len(snap.Guessed) > 0 {
		used := strings.Join(strings.Split(string(snap.Guessed), ""), " ")
		ghelper.DrawText(screen, "Used: "+used, face, gbase.HintX, gbase.HintY+50, ctx.Palette.Text)
	}
}

func (pd *GUIPlayDrawer) drawProgress(ctx *gctx.GUIGameContext, screen *ebiten.Image, wrong int) {
	if pd.theme == base.Pirates {
		for _, part := range gbase.HangmanParts(wrong, gbase.WindowW, gbase.WindowH) {
			ghelper.DrawRect(screen, part, ctx.Palette.Figure)
		}
		return
	}
	// a missing picture was already reported; the frame goes on without it
	if img := ctx.AssetsWorker.WrongGuessImage(pd.theme, wrong); img != nil {
		ghelper.DrawImageStretched(screen, img, gbase.WindowW, gbase.WindowH)
	}
}

func (pd *GUIPlayDrawer) drawWord(ctx *gctx.GUIGameContext, screen *ebiten.Image, masked string) {
	face := ctx.AssetsWorker.Fonts().Normal
	x := gbase.WordX
	for _, c := range masked {
		if c == base.Placeholder {
			ghelper.DrawRect(screen, gbase.Rect{X: x, Y: gbase.UnderscoreY, W: gbase.LetterW, H: gbase.UnderscoreH}, ctx.Palette.Text)
		} else {
			ghelper.DrawText(screen, string(c), face, x, gbase.WordY, ctx.Palette.Text)
		}
		x += gbase.LetterStep
	}
}
