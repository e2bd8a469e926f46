package src

import (
	"hangman/src/base"
	"hangman/src/lexicon"
	"hangman/src/logx"
	"hangman/src/round"
)

type Screen uint8

const (
	ScreenMainMenu Screen = iota
	ScreenThemeMenu
	ScreenPlaying
	ScreenEnd
	ScreenQuit
)

func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "main menu"
	case ScreenThemeMenu:
		return "theme menu"
	case ScreenPlaying:
		return "playing"
	case ScreenEnd:
		return "end screen"
	case ScreenQuit:
		return "quit"
	default:
		return "invalid"
	}
}

type EventType uint8

const (
	EventConfirm EventType = iota // Return/Enter
	EventDigit                    // theme keys 1..3
	EventLetter                   // a..z
	EventQuit                     // window close
)

type Event struct {
	Type EventType
	Key  rune
}

func Confirm() Event { return Event{Type: EventConfirm} }
func Digit(d rune) Event { return Event{Type: EventDigit, Key: d} }
func Letter(c rune) Event { return Event{Type: EventLetter, Key: c} }
func Quit() Event { return Event{Type: EventQuit} }

// session tally, in memory only
type Stats struct {
	Wins   int
	Losses int
}

// GameBuilder owns everything a session needs: the current screen, the
// chosen theme and the running round. Front ends feed it input through
// Dispatch and redraw from its getters.
type GameBuilder struct {
	screen  Screen
	theme   base.Theme
	round   *round.Round
	stats   Stats
	lexicon *lexicon.Lexicon
	logger  logx.Logger
}

func NewBuilderGame(lex *lexicon.Lexicon, logger logx.Logger) *GameBuilder {
	return &GameBuilder{screen: ScreenMainMenu, theme: base.InvalidTheme, lexicon: lex, logger: logger}
}

func (gb *GameBuilder) Screen() Screen {
	return gb.screen
}

func (gb *GameBuilder) Theme() base.Theme {
	return gb.theme
}

// nil outside of Playing and End screens
func (gb *GameBuilder) Round() *round.Round {
	return gb.round
}

func (gb *GameBuilder) Stats() Stats {
	return gb.stats
}

// Dispatch applies one input event and reports whether anything visible
// changed. Events that mean nothing on the current screen are ignored.
func (gb *GameBuilder) Dispatch(ev Event) bool {
	if ev.Type == EventQuit {
		if gb.screen == ScreenQuit {
			return false
		}
		gb.logger.Infof("quit requested on %s", gb.screen)
		gb.screen = ScreenQuit
		return true
	}

	switch gb.screen {
	case ScreenMainMenu:
		if ev.Type == EventConfirm {
			gb.setScreen(ScreenThemeMenu)
			return true
		}
	case ScreenThemeMenu:
		if ev.Type == EventDigit {
			t := base.ThemeByDigit(ev.Key)
			if !t.IsValid() {
				return false
			}
			return gb.CreateRound(t) == nil
		}
	case ScreenPlaying:
		if ev.Type == EventLetter {
			return gb.Guess(ev.Key)
		}
	case ScreenEnd:
		if ev.Type == EventConfirm {
			gb.round = nil
			gb.theme = base.InvalidTheme
			gb.setScreen(ScreenMainMenu)
			return true
		}
	}
	return false
}

// DispatchAll applies the events of one input batch in order and stops at
// the first screen change; the rest were aimed at the old screen.
// It reports whether the screen changed.
func (gb *GameBuilder) DispatchAll(events []Event) bool {
	before := gb.screen
	for _, ev := range events {
		gb.Dispatch(ev)
		if gb.screen != before {
			return true
		}
	}
	return false
}

// CreateRound draws a word for the theme and starts playing it.
func (gb *GameBuilder) CreateRound(t base.Theme) error {
	pair, err := gb.lexicon.PickRandom(t)
	if err != nil {
		gb.logger.Errorf("error pick word for %s: %v", t, err)
		return err
	}
	gb.StartRound(t, pair)
	return nil
}

// StartRound starts a round on a known word.
func (gb *GameBuilder) StartRound(t base.Theme, pair base.WordHintPair) {
	gb.logger.Debugf("new round: theme=%s, %d letters", t, len(pair.Word))
	gb.theme = t
	gb.round = round.NewRound(pair)
	gb.setScreen(ScreenPlaying)
}

func (gb *GameBuilder) Guess(letter rune) bool {
	if gb.screen != ScreenPlaying || gb.round == nil {
		return false
	}
	if !gb.round.Guess(letter) {
		return false
	}
	gb.logger.Debugf("guess %q: wrong=%d masked=%s", letter, gb.round.WrongGuesses(), gb.round.MaskedWord())
	switch gb.round.Status() {
	case base.Won:
		gb.stats.Wins++
		gb.logger.Infof("round won: %s", gb.round.Pair().Word)
		gb.setScreen(ScreenEnd)
	case base.Lost:
		gb.stats.Losses++
		gb.logger.Infof("round lost: %s", gb.round.Pair().Word)
		gb.setScreen(ScreenEnd)
	}
	return true
}

func (gb *GameBuilder) setScreen(s Screen) {
	gb.logger.Debugf("screen %s -> %s", gb.screen, s)
	gb.screen = s
}
