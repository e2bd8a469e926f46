package gconf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	c, err := NewGUIConfig(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatal(err)
	}
	if *c != withPath(defaultConfig(), c.Path()) {
		t.Fatalf("want defaults, got %+v", c)
	}
}

func withPath(c Config, p string) Config {
	c.path = p
	return c
}

func TestJSONCorrected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.json")
	data := `{"theme": "neon", "font_size": 2, "reseed": "process", "window_w": 100, "window_h": 100, "words_file": "w.json"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewGUIConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Theme != "light" || c.FontSize != 24 || c.WindowW != 1920 || c.WindowH != 1080 {
		t.Fatalf("invalid values not corrected: %+v", c)
	}
	if c.Reseed != "process" || c.WordsFile != "w.json" || c.AssetsDir != "." {
		t.Fatalf("valid values lost: %+v", c)
	}
}

func TestINI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.ini")
	data := "theme = dark\nassets_dir = res\nfont_size = 30\ndebug = true\n\n[window]\nwidth = 1280\nheight = 720\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewGUIConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Theme != "dark" || c.AssetsDir != "res" || c.FontSize != 30 || !c.Debug {
		t.Fatalf("ini values not read: %+v", c)
	}
	if c.WindowW != 1280 || c.WindowH != 720 || c.Reseed != "call" {
		t.Fatalf("window section not read: %+v", c)
	}
}

func TestBrokenJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGUIConfig(path); err == nil {
		t.Fatalf("broken file must fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.json")
	c, _ := NewGUIConfig(path)
	c.Theme = "dark"
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	again, err := NewGUIConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Theme != "dark" {
		t.Fatalf("saved theme lost")
	}
}

func TestSaveINIRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.ini")
	c, _ := NewGUIConfig(path)
	c.Reseed = "process"
	c.WindowW, c.WindowH = 1280, 720
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	again, err := NewGUIConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Reseed != "process" || again.WindowW != 1280 || again.WindowH != 720 || again.AssetsDir != "." {
		t.Fatalf("ini round trip lost values: %+v", again)
	}
}
