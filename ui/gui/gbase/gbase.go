package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 1920
	WindowH int = 1080

	// play screen layout
	HintX       = 100
	HintY       = 100
	TriesX      = WindowW - 200
	TriesY      = 50
	WordX       = 100
	WordY       = 50
	LetterStep  = 40
	LetterW     = 30
	UnderscoreY = 60
	UnderscoreH = 5
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg          color.RGBA // play screen clear color
	Figure      color.RGBA // gallows and hangman
	Text        color.RGBA // hint, tries and letters
	EndText     color.RGBA // message over win/lose background
	PanelFill   color.RGBA
	PanelStroke color.RGBA
	Accent      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:          color.RGBA{0xff, 0xff, 0xff, 0xff},
	Figure:      color.RGBA{0x00, 0x00, 0x00, 0xff},
	Text:        color.RGBA{0x00, 0x00, 0x00, 0xff},
	EndText:     color.RGBA{0xff, 0xff, 0xff, 0xff},
	PanelFill:   color.RGBA{0xff, 0xff, 0xff, 0xcc},
	PanelStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	Accent:      color.RGBA{0x22, 0x88, 0xcc, 0xff},
}

var DarkPalette = Palette{
	Bg:          color.RGBA{0x12, 0x12, 0x12, 0xff},
	Figure:      color.RGBA{0xee, 0xee, 0xee, 0xff},
	Text:        color.RGBA{0xee, 0xee, 0xee, 0xff},
	EndText:     color.RGBA{0xff, 0xff, 0xff, 0xff},
	PanelFill:   color.RGBA{0x20, 0x20, 0x20, 0xcc},
	PanelStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	Accent:      color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
}
