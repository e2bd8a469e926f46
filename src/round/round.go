package round

import (
	"hangman/src/base"
	"sort"
	"strings"
)

// Round is the state of one playthrough bound to a single word.
// Only accepted guesses mutate it; once Won or Lost it is frozen.
type Round struct {
	pair    base.WordHintPair
	guessed map[rune]bool
	wrong   int
	status  base.RoundStatus
}

type Snapshot struct {
	Word           string
	Hint           string
	Masked         string
	Guessed        []rune // sorted
	WrongGuesses   int
	TriesRemaining int
	Status         base.RoundStatus
}

func NewRound(pair base.WordHintPair) *Round {
	return &Round{pair: pair, guessed: make(map[rune]bool), status: base.InProgress}
}

// Guess applies one letter and reports whether the state changed.
// Non-letters, repeated letters and guesses after the end are ignored.
func (r *Round) Guess(letter rune) bool {
	if r.status.IsTerminal() || !base.IsLetter(letter) || r.guessed[letter] {
		return false
	}
	r.guessed[letter] = true
	if !strings.ContainsRune(r.pair.Word, letter) {
		r.wrong++
	}
	r.recompute()
	return true
}

func (r *Round) recompute() {
	if r.wrong >= base.MaxWrongGuesses {
		r.status = base.Lost
		return
	}
	for _, c := range r.pair.Word {
		if !r.guessed[c] {
			r.status = base.InProgress
			return
		}
	}
	r.status = base.Won
}

func (r *Round) Pair() base.WordHintPair {
	return r.pair
}

func (r *Round) Status() base.RoundStatus {
	return r.status
}

func (r *Round) IsTerminal() bool {
	return r.status.IsTerminal()
}

func (r *Round) WrongGuesses() int {
	return r.wrong
}

func (r *Round) TriesRemaining() int {
	return base.MaxWrongGuesses - r.wrong
}

func (r *Round) IsGuessed(letter rune) bool {
	return r.guessed[letter]
}

// MaskedWord shows guessed letters and base.Placeholder elsewhere, "s__p".
func (r *Round) MaskedWord() string {
	var sb strings.Builder
	for _, c := range r.pair.Word {
		if r.guessed[c] {
			sb.WriteRune(c)
		} else {
			sb.WriteRune(base.Placeholder)
		}
	}
	return sb.String()
}

func (r *Round) GuessedLetters() []rune {
	letters := make([]rune, 0, len(r.guessed))
	for c := range r.guessed {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		Word:           r.pair.Word,
		Hint:           r.pair.Hint,
		Masked:         r.MaskedWord(),
		Guessed:        r.GuessedLetters(),
		WrongGuesses:   r.wrong,
		TriesRemaining: r.TriesRemaining(),
		Status:         r.status,
	}
}
