package gassets

import (
	"fmt"
	"hangman/src/base"
)

type Background int

const (
	MainMenu Background = iota
	ThemeMenu
	WinScreen
	LoseScreen
)

var Backgrounds = []Background{MainMenu, ThemeMenu, WinScreen, LoseScreen}

func (b Background) File() string {
	switch b {
	case MainMenu:
		return "MenuWallpaper.png"
	case ThemeMenu:
		return "ThemeWallpaper.png"
	case WinScreen:
		return "WinScreen.png"
	case LoseScreen:
		return "LoseScreen.png"
	default:
		return ""
	}
}

// WrongGuessFile names the progress picture of a theme after n wrong
// guesses. Pirates are drawn, not loaded, so their name is empty.
func WrongGuessFile(t base.Theme, wrong int) string {
	if wrong < 0 || wrong > base.MaxWrongGuesses {
		return ""
	}
	switch t {
	case base.CrimeDrama:
		return fmt.Sprintf("a_wrong_guesses_%d.png", wrong)
	case base.Comics:
		return fmt.Sprintf("c_wrong_guess_%d.png", wrong)
	default:
		return ""
	}
}
