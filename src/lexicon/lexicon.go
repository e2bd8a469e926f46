package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"hangman/src/base"
	"io"
	"math/rand"
	"os"
	"slices"
	"sync"
	"time"
)

var (
	ErrEmptyTheme   = errors.New("theme has no words")
	ErrInvalidWord  = errors.New("word must be lowercase a-z")
	ErrInvalidTheme = errors.New("unknown theme")
)

type ReseedPolicy int

const (
	// new source from wall-clock seconds before every pick
	ReseedPerCall ReseedPolicy = iota
	// one source for the lifetime of the lexicon
	ReseedPerProcess
)

func ReseedPolicyByString(s string) ReseedPolicy {
	if s == "process" {
		return ReseedPerProcess
	}
	return ReseedPerCall
}

func (p ReseedPolicy) String() string {
	if p == ReseedPerProcess {
		return "process"
	}
	return "call"
}

var builtin = map[base.Theme][]base.WordHintPair{
	base.Pirates: {
		{Word: "treasure", Hint: "Pirate's gold"},
		{Word: "ship", Hint: "Pirate's vehicle"},
		{Word: "parrot", Hint: "Pirate's pet"},
		{Word: "captain", Hint: "Leader of the pirates"},
		{Word: "island", Hint: "Pirate's hideout"},
	},
	base.CrimeDrama: {
		{Word: "detective", Hint: "Investigative professional"},
		{Word: "murder", Hint: "Intentional killing of a person"},
		{Word: "evidence", Hint: "Proof or indication"},
		{Word: "suspect", Hint: "Person believed to be guilty"},
		{Word: "alibi", Hint: "Claim of being elsewhere during a crime"},
	},
	base.Comics: {
		{Word: "superhero", Hint: "Comics hero"},
		{Word: "villain", Hint: "Comics antagonist"},
		{Word: "cape", Hint: "Hero's garment"},
		{Word: "power", Hint: "Hero's ability"},
		{Word: "mask", Hint: "Hero's disguise"},
	},
}

// Lexicon maps every theme to a fixed, non-empty list of words.
// It never changes after construction.
type Lexicon struct {
	words  map[base.Theme][]base.WordHintPair
	policy ReseedPolicy
	seed   func() int64

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Lexicon)

func WithPolicy(p ReseedPolicy) Option {
	return func(l *Lexicon) { l.policy = p }
}

// seed source, wall-clock seconds by default
func WithSeed(seed func() int64) Option {
	return func(l *Lexicon) { l.seed = seed }
}

func NewLexicon(opts ...Option) *Lexicon {
	l := &Lexicon{
		words:  builtin,
		policy: ReseedPerCall,
		seed:   func() int64 { return time.Now().Unix() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewLexiconFromJSON reads a word file and falls back to the built-in list
// for every theme the file does not mention.
func NewLexiconFromJSON(r io.Reader, opts ...Option) (*Lexicon, error) {
	var raw map[string][]base.WordHintPair
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decode word list: %w", err)
	}
	words := make(map[base.Theme][]base.WordHintPair, len(builtin))
	for t, list := range builtin {
		words[t] = list
	}
	for key, list := range raw {
		t := base.ThemeByKey(key)
		if t == base.InvalidTheme {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTheme, key)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyTheme, t)
		}
		for _, p := range list {
			if err := validate(p); err != nil {
				return nil, err
			}
		}
		words[t] = list
	}
	l := NewLexicon(opts...)
	l.words = words
	return l, nil
}

func NewLexiconFromFile(path string, opts ...Option) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error open word list: %w", err)
	}
	defer f.Close()
	return NewLexiconFromJSON(f, opts...)
}

func validate(p base.WordHintPair) error {
	if p.Word == "" {
		return fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	for _, r := range p.Word {
		if !base.IsLetter(r) {
			return fmt.Errorf("%w: %q", ErrInvalidWord, p.Word)
		}
	}
	if p.Hint == "" {
		return fmt.Errorf("word %q has no hint", p.Word)
	}
	return nil
}

func (l *Lexicon) Policy() ReseedPolicy {
	return l.policy
}

// WordsFor returns a copy of the theme's list in order.
func (l *Lexicon) WordsFor(t base.Theme) []base.WordHintPair {
	return slices.Clone(l.words[t])
}

// PickRandom selects uniformly from the theme's list.
func (l *Lexicon) PickRandom(t base.Theme) (base.WordHintPair, error) {
	list := l.words[t]
	if len(list) == 0 {
		return base.WordHintPair{}, fmt.Errorf("%w: %s", ErrEmptyTheme, t)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.rnd == nil || l.policy == ReseedPerCall {
		l.rnd = rand.New(rand.NewSource(l.seed()))
	}
	return list[l.rnd.Intn(len(list))], nil
}
