package gassets

import (
	"hangman/src/base"
	"testing"
)

func TestWrongGuessFile(t *testing.T) {
	tests := []struct {
		theme base.Theme
		wrong int
		want  string
	}{
		{base.CrimeDrama, 0, "a_wrong_guesses_0.png"},
		{base.CrimeDrama, 6, "a_wrong_guesses_6.png"},
		{base.Comics, 3, "c_wrong_guess_3.png"},
		{base.Pirates, 2, ""},
		{base.Comics, 7, ""},
		{base.CrimeDrama, -1, ""},
	}
	for _, tt := range tests {
		if got := WrongGuessFile(tt.theme, tt.wrong); got != tt.want {
			t.Errorf("%s/%d: want %q, got %q", tt.theme, tt.wrong, tt.want, got)
		}
	}
}

func TestBackgroundFiles(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Backgrounds {
		name := b.File()
		if name == "" || seen[name] {
			t.Fatalf("background %d has bad file %q", b, name)
		}
		seen[name] = true
	}
}
