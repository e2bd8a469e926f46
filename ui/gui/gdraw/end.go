package gdraw

import (
	"fmt"
	"hangman/src/base"
	"hangman/ui/gui/gbase"
	"hangman/ui/gui/gbase/gassets"
	"hangman/ui/gui/gctx"
	"hangman/ui/gui/ghelper"
	"hangman/ui/gui/ghelper/gclipboard"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GUIEndDrawer is the win or lose screen of the finished round.
type GUIEndDrawer struct {
	won     bool
	word    string
	message string
	tally   string
	notice  string
}

func NewGUIEndDrawer(ctx *gctx.GUIGameContext) *GUIEndDrawer {
	ed := &GUIEndDrawer{}
	if r := ctx.Builder.Round(); r != nil {
		ed.won = r.Status() == base.Won
		ed.word = r.Pair().Word
	}
	if ed.won {
		ed.message = fmt.Sprintf("Congratulations! You guessed the word: %s", ed.word)
	} else {
		ed.message = fmt.Sprintf("You lost! The word was: %s", ed.word)
	}
	st := ctx.Builder.Stats()
	ed.tally = fmt.Sprintf("Wins: %d   Losses: %d", st.Wins, st.Losses)
	return ed
}

func (ed *GUIEndDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := gclipboard.WriteAll(ed.word); err != nil {
			ctx.Logx.Warnf("error copy word: %v", err)
			ed.notice = "Copy failed"
		} else {
			ed.notice = "Word copied"
		}
	}
	return dispatch(ctx.Builder, pollEvents()), nil
}

func (ed *GUIEndDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Palette.Bg)
	bg := gassets.LoseScreen
	if ed.won {
		bg = gassets.WinScreen
	}
	ghelper.DrawImageStretched(screen, ctx.AssetsWorker.Background(bg), gbase.WindowW, gbase.WindowH)

	face := ctx.AssetsWorker.Fonts().Normal
	x := gbase.WindowW/2 - 200
	y := gbase.WindowH/2 + 200
	ghelper.DrawText(screen, ed.message, face, x, y, ctx.Palette.EndText)
	ghelper.DrawText(screen, ed.tally, face, x, y+40, ctx.Palette.EndText)
	ghelper.DrawText(screen, "Enter: main menu   C: copy word", face, x, y+80, ctx.Palette.EndText)
	if ed.notice != "" {
		ghelper.DrawText(screen, ed.notice, face, x, y+120, ctx.Palette.EndText)
	}
}
