package gconf

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

const DefaultFile = "hangman.json"

type Config struct {
	Theme     string `json:"theme"`      // light/dark
	AssetsDir string `json:"assets_dir"` // images and font
	FontFile  string `json:"font_file"`  // relative to assets_dir
	FontSize  int    `json:"font_size"`  //
	Reseed    string `json:"reseed"`     // call/process
	WordsFile string `json:"words_file"` // optional word list
	WindowH   int    `json:"window_h"`   //
	WindowW   int    `json:"window_w"`   //
	Debug     bool   `json:"debug"`      // true/false

	path string
}

func defaultConfig() Config {
	return Config{
		Theme:     "light",
		AssetsDir: ".",
		FontFile:  "OpenSans-Semibold.ttf",
		FontSize:  24,
		Reseed:    "call",
		WordsFile: "",
		WindowH:   1080,
		WindowW:   1920,
		Debug:     false,
	}
}

// NewGUIConfig loads the file at path (json or ini); a missing file gives
// the defaults.
func NewGUIConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.path = path
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	var c Config
	if strings.HasSuffix(path, ".ini") {
		c, err = loadINI(path)
	} else {
		c, err = loadJSON(path)
	}
	if err != nil {
		return nil, err
	}
	correctableConfig(&c)
	c.path = path

	return &c, nil
}

func loadJSON(path string) (Config, error) {
	conf, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer conf.Close()

	c := defaultConfig()
	dec := json.NewDecoder(conf)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("error decode config: %w", err)
	}
	return c, nil
}

func loadINI(path string) (Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("error decode config: %w", err)
	}
	def := defaultConfig()
	sec := f.Section("")
	win := f.Section("window")
	return Config{
		Theme:     sec.Key("theme").MustString(def.Theme),
		AssetsDir: sec.Key("assets_dir").MustString(def.AssetsDir),
		FontFile:  sec.Key("font_file").MustString(def.FontFile),
		FontSize:  sec.Key("font_size").MustInt(def.FontSize),
		Reseed:    sec.Key("reseed").MustString(def.Reseed),
		WordsFile: sec.Key("words_file").String(),
		WindowH:   win.Key("height").MustInt(def.WindowH),
		WindowW:   win.Key("width").MustInt(def.WindowW),
		Debug:     sec.Key("debug").MustBool(def.Debug),
	}, nil
}

func (c *Config) Path() string {
	return c.path
}

// Save writes the config back in the format its path names.
func (c *Config) Save() error {
	if strings.HasSuffix(c.path, ".ini") {
		return c.saveINI()
	}
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, jsonData, 0644)
}

func (c *Config) saveINI() error {
	f := ini.Empty()
	sec := f.Section("")
	sec.Key("theme").SetValue(c.Theme)
	sec.Key("assets_dir").SetValue(c.AssetsDir)
	sec.Key("font_file").SetValue(c.FontFile)
	sec.Key("font_size").SetValue(strconv.Itoa(c.FontSize))
	sec.Key("reseed").SetValue(c.Reseed)
	sec.Key("words_file").SetValue(c.WordsFile)
	sec.Key("debug").SetValue(strconv.FormatBool(c.Debug))
	win := f.Section("window")
	win.Key("width").SetValue(strconv.Itoa(c.WindowW))
	win.Key("height").SetValue(strconv.Itoa(c.WindowH))
	return f.SaveTo(c.path)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}
	if c.FontFile == "" {
		c.FontFile = def.FontFile
	}
	if c.FontSize < 8 || c.FontSize > 128 {
		c.FontSize = def.FontSize
	}
	if c.Reseed != "call" && c.Reseed != "process" {
		c.Reseed = def.Reseed
	}
	if c.WindowH < 480 || c.WindowW < 640 {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
