package gui

import (
	"errors"
	"hangman/src"
	"hangman/src/logx"
	"hangman/ui/gui/gbase"
	"hangman/ui/gui/gbase/gconf"
	"hangman/ui/gui/gctx"
	"hangman/ui/gui/gdraw"
	"hangman/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	mgr *gdraw.SceneManager
	ctx *gctx.GUIGameContext
}

func NewGUI(b *src.GameBuilder, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	as, err := ghelper.NewGUIAssetsWorker(cfg, logx)
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(b, as, cfg, logx)
	mgr := gdraw.NewSceneManager(ctx)
	return &GUIProcessing{mgr: mgr, ctx: ctx}, nil
}

// Run blocks until the window is closed. Every image and font face is
// released before it returns, on the quit path as well as on errors.
func (gp *GUIProcessing) Run() error {
	defer gp.ctx.AssetsWorker.Close()
	defer gp.mgr.Close()

	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("Hangman Game")
	ebiten.SetWindowClosingHandled(true)
	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		gp.ctx.Logx.Info("window closed")
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	return gp.mgr.Update()
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.mgr.Draw(screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gbase.WindowW, gbase.WindowH
}
