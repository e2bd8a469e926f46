package gdraw

import (
	"hangman/src"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var letterKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
	ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
	ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
	ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
}

var digitKeys = map[ebiten.Key]rune{
	ebiten.Key1:       '1',
	ebiten.Key2:       '2',
	ebiten.Key3:       '3',
	ebiten.KeyNumpad1: '1',
	ebiten.KeyNumpad2: '2',
	ebiten.KeyNumpad3: '3',
}

// pollEvents turns the keys pressed since the last tick into events,
// in the order ebiten reports them.
func pollEvents() []src.Event {
	var events []src.Event
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if k == ebiten.KeyEnter || k == ebiten.KeyNumpadEnter {
			events = append(events, src.Confirm())
		} else if c, ok := letterOf(k); ok {
			events = append(events, src.Letter(c))
		} else if d, ok := digitKeys[k]; ok {
			events = append(events, src.Digit(d))
		}
	}
	return events
}

func letterOf(k ebiten.Key) (rune, bool) {
	for i, lk := range letterKeys {
		if lk == k {
			return rune('a' + i), true
		}
	}
	return 0, false
}

// dispatch feeds the events to the builder and reports the scene to show next.
func dispatch(b *src.GameBuilder, events []src.Event) SceneType {
	if !b.DispatchAll(events) {
		return SceneNotChanged
	}
	return SceneTypeOf(b.Screen())
}
