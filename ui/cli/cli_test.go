package cli

import (
	"bufio"
	"bytes"
	"hangman/src"
	"hangman/src/base"
	"hangman/src/lexicon"
	"hangman/src/logx"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newBuilder(t *testing.T) *src.GameBuilder {
	t.Helper()
	words := `{"pirates": [{"word": "ship", "hint": "Pirate's vehicle"}], "comics": [{"word": "cape", "hint": "Hero's garment"}]}`
	lex, err := lexicon.NewLexiconFromJSON(strings.NewReader(words))
	if err != nil {
		t.Fatal(err)
	}
	return src.NewBuilderGame(lex, logx.NewNop())
}

func run(t *testing.T, input string) (*src.GameBuilder, string) {
	t.Helper()
	color.NoColor = true
	gb := newBuilder(t)
	var out bytes.Buffer
	c := NewCLI(gb, Render)
	c.SetIO(strings.NewReader(input), &out)
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	return gb, out.String()
}

func TestLineModeWin(t *testing.T) {
	gb, out := run(t, "\n1\nshi\np\n")
	if !strings.Contains(out, "Congratulations! You guessed the word: ship") {
		t.Fatalf("win message missing:\n%s", out)
	}
	if !strings.Contains(out, "Wins: 1   Losses: 0") {
		t.Fatalf("tally missing:\n%s", out)
	}
	if !strings.Contains(out, "Left: a b c d e f g j k l m n o p q r t u v w x y z") {
		t.Fatalf("remaining letters missing:\n%s", out)
	}
	if !strings.Contains(out, "s h i _") || !strings.Contains(out, "Hint: Pirate's vehicle") {
		t.Fatalf("play screen missing:\n%s", out)
	}
	if gb.Screen() != src.ScreenQuit {
		t.Fatalf("end of input must quit, got %s", gb.Screen())
	}
}

func TestLineModeLose(t *testing.T) {
	_, out := run(t, "\n3\nzxqwv\ny\n\n")
	if !strings.Contains(out, "You lost! The word was: cape") {
		t.Fatalf("lose message missing:\n%s", out)
	}
	if !strings.Contains(out, "Tries left: 1") {
		t.Fatalf("tries counter missing:\n%s", out)
	}
	if !strings.Contains(out, "Press Enter to start") {
		t.Fatalf("confirm on end screen must return to main menu:\n%s", out)
	}
}

func TestLineModeQuit(t *testing.T) {
	gb, out := run(t, "quit\n\n")
	if gb.Screen() != src.ScreenQuit {
		t.Fatalf("quit ignored")
	}
	if strings.Contains(out, "Choose a theme") {
		t.Fatalf("input after quit must be ignored:\n%s", out)
	}
}

func TestFigure(t *testing.T) {
	empty := strings.Join(Figure(0), "\n")
	if strings.ContainsAny(empty, "O/\\") {
		t.Fatalf("no body parts expected:\n%s", empty)
	}
	full := Figure(base.MaxWrongGuesses)
	if full[2] != "  O   |" || full[3] != " /|\\  |" || full[4] != " / \\  |" {
		t.Fatalf("unexpected full figure:\n%s", strings.Join(full, "\n"))
	}
	if strings.Join(Figure(9), "") != strings.Join(full, "") {
		t.Fatalf("figure must stop at the full body")
	}
}

func TestEventOfByte(t *testing.T) {
	tests := []struct {
		b    byte
		typ  src.EventType
		want bool
	}{
		{'\r', src.EventConfirm, true},
		{'2', src.EventDigit, true},
		{'k', src.EventLetter, true},
		{3, src.EventQuit, true},
		{4, src.EventQuit, true},
		{0x1b, 0, false},
		{'K', 0, false},
		{'#', 0, false},
	}
	for _, tt := range tests {
		ev, ok := eventOfByte(tt.b)
		if ok != tt.want || (ok && ev.Type != tt.typ) {
			t.Errorf("byte %q: got %v %v", tt.b, ev, ok)
		}
	}
}

func runRawInput(t *testing.T, input string) *src.GameBuilder {
	t.Helper()
	color.NoColor = true
	gb := newBuilder(t)
	c := NewCLI(gb, Render)
	c.SetIO(nil, &bytes.Buffer{})
	if err := c.runRaw(bufio.NewReader(strings.NewReader(input))); err != nil {
		t.Fatal(err)
	}
	return gb
}

func TestRawArrowKeysIgnored(t *testing.T) {
	// arrow up, arrow left, F1 and Delete in the middle of a round
	gb := runRawInput(t, "\r1s\x1b[A\x1b[D\x1bOP\x1b[3~h")
	if gb.Screen() != src.ScreenQuit {
		t.Fatalf("end of input must quit, got %s", gb.Screen())
	}
	snap := gb.Round().Snapshot()
	if snap.Masked != "sh__" || snap.WrongGuesses != 0 {
		t.Fatalf("escape sequences leaked into the round: %+v", snap)
	}
}

func TestRawArrowKeepsPlaying(t *testing.T) {
	color.NoColor = true
	gb := newBuilder(t)
	c := NewCLI(gb, Render)
	c.SetIO(nil, &bytes.Buffer{})
	r := bufio.NewReader(strings.NewReader("\r1\x1b[A"))
	for i := 0; i < 3; i++ {
		ev, ok, err := nextEvent(r)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			gb.Dispatch(ev)
		}
	}
	if gb.Screen() != src.ScreenPlaying {
		t.Fatalf("arrow key during play changed screen to %s", gb.Screen())
	}
}

func TestRawLoneEscQuits(t *testing.T) {
	gb := runRawInput(t, "\r1\x1b")
	if gb.Screen() != src.ScreenQuit {
		t.Fatalf("lone escape must quit, got %s", gb.Screen())
	}
	if gb.Round() == nil {
		t.Fatalf("round should have started before quit")
	}
}
