package cli

import (
	"bufio"
	"fmt"
	"hangman/src"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type DrawFunc func(gb *src.GameBuilder) string

type CLIProcessing struct {
	builder *src.GameBuilder
	draw    DrawFunc
	in      io.Reader
	out     io.Writer
}

func NewCLI(b *src.GameBuilder, draw DrawFunc) *CLIProcessing {
	return &CLIProcessing{builder: b, draw: draw, in: os.Stdin, out: os.Stdout}
}

func (c *CLIProcessing) SetIO(in io.Reader, out io.Writer) {
	c.in = in
	c.out = out
}

// raw processing
// - Enter confirms, 1/2/3 pick a theme, a-z guess
// - Ctrl+C, Ctrl+D or a lone Esc quits, arrows and other sequences are dropped
// - redraw after every accepted key
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	c.redraw(true)
	return c.runRaw(bufio.NewReader(f))
}

func (c *CLIProcessing) runRaw(r *bufio.Reader) error {
	for c.builder.Screen() != src.ScreenQuit {
		ev, ok, err := nextEvent(r)
		if err == io.EOF {
			c.builder.Dispatch(src.Quit())
			return nil
		}
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if c.builder.Dispatch(ev) {
			c.redraw(true)
		}
	}
	return nil
}

// nextEvent reads one key. Escape sequences (arrows, function keys) are
// consumed and dropped; a lone Esc quits.
func nextEvent(r *bufio.Reader) (src.Event, bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return src.Event{}, false, err
	}
	if b != 0x1b {
		ev, ok := eventOfByte(b)
		return ev, ok, nil
	}
	if r.Buffered() == 0 {
		return src.Quit(), true, nil
	}
	b1, err := r.ReadByte()
	if err != nil {
		return src.Event{}, false, nil
	}
	if b1 != '[' && b1 != 'O' {
		// Alt+key
		return src.Event{}, false, nil
	}
	// CSI parameters end with a byte in 0x40..0x7e
	for {
		b2, err := r.ReadByte()
		if err != nil || (b2 >= 0x40 && b2 <= 0x7e) {
			return src.Event{}, false, nil
		}
	}
}

func eventOfByte(b byte) (src.Event, bool) {
	switch {
	case b == 3 || b == 4: // Ctrl+C, Ctrl+D
		return src.Quit(), true
	case b == '\r' || b == '\n':
		return src.Confirm(), true
	case b >= '1' && b <= '9':
		return src.Digit(rune(b)), true
	case b >= 'a' && b <= 'z':
		return src.Letter(rune(b)), true
	default:
	}
	return src.Event{}, false
}

// RunLineMode reads whole lines: an empty line confirms, "quit" leaves,
// anything else is fed key by key.
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw(false)
	for c.builder.Screen() != src.ScreenQuit && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		changed := false
		switch line {
		case "":
			changed = c.builder.Dispatch(src.Confirm())
		case "quit", "exit":
			changed = c.builder.Dispatch(src.Quit())
		default:
			for i := 0; i < len(line); i++ {
				ev, ok := eventOfByte(line[i])
				if !ok || ev.Type == src.EventQuit || ev.Type == src.EventConfirm {
					continue
				}
				if c.builder.Dispatch(ev) {
					changed = true
				}
			}
		}
		if changed {
			c.redraw(false)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if c.builder.Screen() != src.ScreenQuit {
		// end of input
		c.builder.Dispatch(src.Quit())
	}
	return nil
}

func (c *CLIProcessing) redraw(raw bool) {
	s := c.draw(c.builder)
	if raw {
		s = "\033[H\033[2J" + strings.ReplaceAll(s, "\n", "\r\n")
	}
	fmt.Fprint(c.out, s)
}
