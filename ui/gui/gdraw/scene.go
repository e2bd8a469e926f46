package gdraw

import (
	"fmt"
	"hangman/src"
	"hangman/ui/gui/gbase"
	"hangman/ui/gui/gctx"
	"hangman/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) (SceneType, error)
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
}

// scenes holding their own images free them on the way out
type releaser interface {
	Release()
}

type SceneType int

const (
	SceneMainMenu SceneType = iota
	SceneThemeMenu
	ScenePlay
	SceneEnd
	SceneNotChanged
)

func SceneTypeOf(s src.Screen) SceneType {
	switch s {
	case src.ScreenMainMenu:
		return SceneMainMenu
	case src.ScreenThemeMenu:
		return SceneThemeMenu
	case src.ScreenPlaying:
		return ScenePlay
	case src.ScreenEnd:
		return SceneEnd
	default:
	}
	return SceneNotChanged
}

func (t SceneType) ToScene(s Scene, ctx *gctx.GUIGameContext) Scene {
	switch t {
	case SceneMainMenu:
		s = NewGUIMenuDrawer(ctx)
	case SceneThemeMenu:
		s = NewGUIThemeDrawer(ctx)
	case ScenePlay:
		s = NewGUIPlayDrawer(ctx)
	case SceneEnd:
		s = NewGUIEndDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

// ---- Scene manager ----

type SceneManager struct {
	ctx     *gctx.GUIGameContext
	current Scene
}

func NewSceneManager(ctx *gctx.GUIGameContext) *SceneManager {
	return &SceneManager{
		ctx:     ctx,
		current: SceneTypeOf(ctx.Builder.Screen()).ToScene(nil, ctx),
	}
}

func (m *SceneManager) Update() error {
	if ebiten.IsWindowBeingClosed() {
		m.ctx.Builder.Dispatch(src.Quit())
	}
	if m.ctx.Builder.Screen() == src.ScreenQuit {
		return gbase.ErrExit
	}
	t, err := m.current.Update(m.ctx)
	if err != nil {
		return err
	}
	next := t.ToScene(m.current, m.ctx)
	if next != m.current {
		if r, ok := m.current.(releaser); ok {
			r.Release()
		}
		m.current = next
	}
	return nil
}

// Close frees the GPU images of the scene on screen.
func (m *SceneManager) Close() {
	if r, ok := m.current.(releaser); ok {
		r.Release()
	}
}

func (m *SceneManager) Draw(screen *ebiten.Image) {
	m.current.Draw(m.ctx, screen)
	if m.ctx.Config.Debug {
		// debug overlay
		msg := fmt.Sprintf("TPS: %0.2f  screen: %s", ebiten.ActualTPS(), m.ctx.Builder.Screen())
		ghelper.DrawText(screen, msg, m.ctx.AssetsWorker.Fonts().Debug, 8, gbase.WindowH-24, m.ctx.Palette.Accent)
	}
}

// ---- Caption ----

// caption is a line of text on a pre-rendered rounded panel.
type caption struct {
	text  string
	face  font.Face
	x, y  int
	panel *ebiten.Image
}

const captionPad = 24

func newCaption(ctx *gctx.GUIGameContext, s string, face font.Face, cx, y int) *caption {
	w := ghelper.TextWidth(s, face) + captionPad*2
	h := face.Metrics().Height.Ceil() + captionPad
	return &caption{
		text:  s,
		face:  face,
		x:     cx - w/2,
		y:     y,
		panel: ghelper.RenderRoundedRect(w, h, 16, ctx.Palette.PanelFill, ctx.Palette.PanelStroke, 3),
	}
}

func (c *caption) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(c.x), float64(c.y))
	screen.DrawImage(c.panel, op)
	ghelper.DrawText(screen, c.text, c.face, c.x+captionPad, c.y+captionPad/2, ctx.Palette.Text)
}

func (c *caption) Release() {
	c.panel.Deallocate()
}
