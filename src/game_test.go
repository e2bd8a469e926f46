package src

import (
	"hangman/src/base"
	"hangman/src/lexicon"
	"hangman/src/logx"
	"testing"
)

func newBuilder() *GameBuilder {
	lex := lexicon.NewLexicon(lexicon.WithSeed(func() int64 { return 1 }))
	return NewBuilderGame(lex, logx.NewNop())
}

func TestScreenSequence(t *testing.T) {
	gb := newBuilder()
	if gb.Screen() != ScreenMainMenu {
		t.Fatalf("want main menu, got %s", gb.Screen())
	}
	if gb.Dispatch(Letter('a')) || gb.Dispatch(Digit('1')) {
		t.Fatalf("main menu must only react to confirm")
	}
	if !gb.Dispatch(Confirm()) || gb.Screen() != ScreenThemeMenu {
		t.Fatalf("confirm must open the theme menu, got %s", gb.Screen())
	}
	if gb.Dispatch(Confirm()) || gb.Dispatch(Digit('4')) {
		t.Fatalf("theme menu must ignore confirm and unknown digits")
	}
	if !gb.Dispatch(Digit('3')) || gb.Screen() != ScreenPlaying {
		t.Fatalf("digit 3 must start a round, got %s", gb.Screen())
	}
	if gb.Theme() != base.Comics || gb.Round() == nil {
		t.Fatalf("want comics round, got %s", gb.Theme())
	}
	word := gb.Round().Pair().Word
	for _, c := range word {
		gb.Dispatch(Letter(c))
	}
	if gb.Screen() != ScreenEnd || gb.Round().Status() != base.Won {
		t.Fatalf("want won end screen, got %s / %s", gb.Screen(), gb.Round().Status())
	}
	if gb.Stats().Wins != 1 {
		t.Fatalf("win not counted")
	}
	if gb.Dispatch(Letter('z')) {
		t.Fatalf("end screen must ignore letters")
	}
	if !gb.Dispatch(Confirm()) || gb.Screen() != ScreenMainMenu || gb.Round() != nil {
		t.Fatalf("confirm on end screen must return to the main menu")
	}
}

func TestLosingRound(t *testing.T) {
	gb := newBuilder()
	gb.StartRound(base.Comics, base.WordHintPair{Word: "cape", Hint: "Hero's garment"})
	for _, c := range "zxqwvy" {
		if !gb.Dispatch(Letter(c)) {
			t.Fatalf("guess %q not accepted", c)
		}
	}
	r := gb.Round()
	if r.Status() != base.Lost || r.WrongGuesses() != 6 || r.TriesRemaining() != 0 {
		t.Fatalf("want lost with 6 wrong, got %s with %d", r.Status(), r.WrongGuesses())
	}
	if gb.Screen() != ScreenEnd || gb.Stats().Losses != 1 {
		t.Fatalf("want end screen and one loss, got %s %+v", gb.Screen(), gb.Stats())
	}
}

func TestPiratesParrot(t *testing.T) {
	gb := newBuilder()
	gb.StartRound(base.Pirates, base.WordHintPair{Word: "parrot", Hint: "Pirate's pet"})
	for _, c := range "parot" {
		gb.Dispatch(Letter(c))
	}
	if gb.Round().Status() != base.Won || gb.Round().WrongGuesses() != 0 {
		t.Fatalf("want won with no wrong guesses")
	}
}

func TestQuitFromAnyScreen(t *testing.T) {
	steps := [][]Event{
		{},
		{Confirm()},
		{Confirm(), Digit('1')},
	}
	for _, pre := range steps {
		gb := newBuilder()
		for _, ev := range pre {
			gb.Dispatch(ev)
		}
		if !gb.Dispatch(Quit()) || gb.Screen() != ScreenQuit {
			t.Fatalf("quit not honoured after %d events", len(pre))
		}
		if gb.Dispatch(Quit()) || gb.Dispatch(Confirm()) {
			t.Fatalf("quit screen must be final")
		}
	}
}

func TestQuitFromEndScreen(t *testing.T) {
	gb := newBuilder()
	gb.Dispatch(Confirm())
	gb.Dispatch(Digit('1'))
	for _, c := range gb.Round().Pair().Word {
		gb.Dispatch(Letter(c))
	}
	if gb.Screen() != ScreenEnd {
		t.Fatalf("guessing every letter must end the round, got %s", gb.Screen())
	}
	if !gb.Dispatch(Quit()) || gb.Screen() != ScreenQuit {
		t.Fatalf("quit not honoured on the end screen")
	}
}

func TestDispatchAllStopsAtScreenChange(t *testing.T) {
	gb := newBuilder()
	// confirm opens the theme menu, the digit belongs to the main menu tick
	if !gb.DispatchAll([]Event{Confirm(), Digit('1')}) {
		t.Fatalf("screen change not reported")
	}
	if gb.Screen() != ScreenThemeMenu {
		t.Fatalf("want theme menu, got %s", gb.Screen())
	}
	if gb.DispatchAll([]Event{Confirm(), Letter('a')}) {
		t.Fatalf("ignored events reported a change")
	}

	gb.StartRound(base.Pirates, base.WordHintPair{Word: "ship", Hint: "Pirate's vehicle"})
	if !gb.DispatchAll([]Event{Letter('s'), Letter('h'), Letter('i'), Letter('p'), Confirm()}) {
		t.Fatalf("winning guess must change the screen")
	}
	if gb.Screen() != ScreenEnd {
		t.Fatalf("confirm in the same batch must not leave the end screen, got %s", gb.Screen())
	}
	if gb.Stats().Wins != 1 {
		t.Fatalf("want one win, got %+v", gb.Stats())
	}
}

func TestGuessOutsidePlayIgnored(t *testing.T) {
	gb := newBuilder()
	if gb.Guess('a') {
		t.Fatalf("guess without a round accepted")
	}
}
