package cli

import (
	"fmt"
	"hangman/src"
	"hangman/src/base"
	"hangman/src/round"
	"strings"

	"github.com/fatih/color"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	wordColor  = color.New(color.FgHiWhite, color.Bold)
	hintColor  = color.New(color.FgYellow)
	wrongColor = color.New(color.FgRed)
	winColor   = color.New(color.FgGreen, color.Bold)
	loseColor  = color.New(color.FgRed, color.Bold)
	dimColor   = color.New(color.FgHiBlack)
)

// Figure draws the gallows with one body part per wrong guess.
func Figure(wrong int) []string {
	parts := []struct {
		row, col int
		ch       byte
	}{
		{2, 2, 'O'},  // head
		{3, 2, '|'},  // body
		{3, 1, '/'},  // left arm
		{3, 3, '\\'}, // right arm
		{4, 1, '/'},  // left leg
		{4, 3, '\\'}, // right leg
	}
	rows := [][]byte{
		[]byte("  +---+"),
		[]byte("  |   |"),
		[]byte("      |"),
		[]byte("      |"),
		[]byte("      |"),
		[]byte("      |"),
		[]byte("========="),
	}
	for i := 0; i < wrong && i < len(parts); i++ {
		p := parts[i]
		rows[p.row][p.col] = p.ch
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = string(r)
	}
	return lines
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// letters not tried yet, in alphabet order
func remaining(r *round.Round) string {
	var sb strings.Builder
	for c := 'a'; c <= 'z'; c++ {
		if !r.IsGuessed(c) {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// Render is the DrawFunc of the terminal front end.
func Render(gb *src.GameBuilder) string {
	var sb strings.Builder
	sb.WriteString(titleColor.Sprint("HANGMAN"))
	sb.WriteString("\n\n")

	switch gb.Screen() {
	case src.ScreenMainMenu:
		sb.WriteString("Press Enter to start\n")
	case src.ScreenThemeMenu:
		sb.WriteString("Choose a theme:\n")
		for i, t := range base.Themes {
			fmt.Fprintf(&sb, "  %d  %s\n", i+1, t.Title())
		}
	case src.ScreenPlaying:
		snap := gb.Round().Snapshot()
		fmt.Fprintf(&sb, "Theme: %s\n\n", gb.Theme().Title())
		for _, l := range Figure(snap.WrongGuesses) {
			sb.WriteString(l + "\n")
		}
		sb.WriteString("\n" + wordColor.Sprint(spaced(snap.Masked)) + "\n\n")
		sb.WriteString(hintColor.Sprintf("Hint: %s", snap.Hint) + "\n")
		sb.WriteString(wrongColor.Sprintf("Tries left: %d", snap.TriesRemaining) + "\n")
		if len(snap.Guessed) > 0 {
			sb.WriteString(dimColor.Sprintf("Used: %s", spaced(string(snap.Guessed))) + "\n")
		}
		sb.WriteString("Left: " + spaced(remaining(gb.Round())) + "\n")
	case src.ScreenEnd:
		r := gb.Round()
		for _, l := range Figure(r.WrongGuesses()) {
			sb.WriteString(l + "\n")
		}
		sb.WriteString("\n")
		if r.Status() == base.Won {
			sb.WriteString(winColor.Sprintf("Congratulations! You guessed the word: %s", r.Pair().Word) + "\n")
		} else {
			sb.WriteString(loseColor.Sprintf("You lost! The word was: %s", r.Pair().Word) + "\n")
		}
		st := gb.Stats()
		fmt.Fprintf(&sb, "Wins: %d   Losses: %d\n\nPress Enter to continue\n", st.Wins, st.Losses)
	case src.ScreenQuit:
		sb.WriteString("Bye\n")
	}
	return sb.String()
}
