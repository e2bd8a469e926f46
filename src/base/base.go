package base

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wrong guesses that end a round
const MaxWrongGuesses int = 6

// shown in place of a letter that is not guessed yet
const Placeholder rune = '_'

type Theme uint8

const (
	Pirates Theme = iota
	CrimeDrama
	Comics
	InvalidTheme Theme = 99
)

var Themes = []Theme{Pirates, CrimeDrama, Comics}

func (t Theme) String() string {
	switch t {
	case Pirates:
		return "pirates"
	case CrimeDrama:
		return "crime drama"
	case Comics:
		return "comics"
	default:
		return "invalid"
	}
}

// human readable name, "Crime Drama"
func (t Theme) Title() string {
	return cases.Title(language.English).String(t.String())
}

// key used by word list files
func (t Theme) Key() string {
	switch t {
	case Pirates:
		return "pirates"
	case CrimeDrama:
		return "crime_drama"
	case Comics:
		return "comics"
	default:
		return ""
	}
}

func (t Theme) IsValid() bool {
	return t == Pirates || t == CrimeDrama || t == Comics
}

// digits 1/2/3 select the themes in menu order
func ThemeByDigit(d rune) Theme {
	switch d {
	case '1':
		return Pirates
	case '2':
		return CrimeDrama
	case '3':
		return Comics
	default:
		return InvalidTheme
	}
}

func ThemeByKey(key string) Theme {
	for _, t := range Themes {
		if t.Key() == key {
			return t
		}
	}
	return InvalidTheme
}

type WordHintPair struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}

type RoundStatus uint8

const (
	InProgress RoundStatus = iota
	Won
	Lost
)

func (rs RoundStatus) String() string {
	switch rs {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "invalid"
	}
}

func (rs RoundStatus) IsTerminal() bool {
	return rs == Won || rs == Lost
}

func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}
