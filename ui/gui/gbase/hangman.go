package gbase

import "hangman/src/base"

type Rect struct {
	X, Y, W, H int
}

// gallows, drawn at every stage
func gallows(w, h int) []Rect {
	cx := w / 2
	return []Rect{
		{cx - 100, h - 100, 200, 20}, // base
		{cx, 100, 20, h - 200},       // upright
		{cx, 100, 200, 20},           // beam
		{cx + 190, 120, 10, 50},      // rope
	}
}

// one body part per wrong guess, in the order they appear
func bodyParts(w int) []Rect {
	cx := w / 2
	return []Rect{
		{cx + 175, 170, 50, 50},  // head
		{cx + 190, 220, 20, 100}, // body
		{cx + 140, 240, 50, 20},  // left arm
		{cx + 210, 240, 50, 20},  // right arm
		{cx + 180, 320, 50, 20},  // left leg
		{cx + 210, 320, 50, 20},  // right leg
	}
}

// HangmanParts lists the rectangles of the stick figure for a w x h surface
// after the given number of wrong guesses.
func HangmanParts(wrong, w, h int) []Rect {
	if wrong < 0 {
		wrong = 0
	}
	if wrong > base.MaxWrongGuesses {
		wrong = base.MaxWrongGuesses
	}
	return append(gallows(w, h), bodyParts(w)[:wrong]...)
}
