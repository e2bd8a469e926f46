package ui

import (
	"context"
	"fmt"
	"hangman/src"
	"hangman/src/lexicon"
	"hangman/src/logx"
	clic "hangman/ui/cli"
	"hangman/ui/gui"
	"hangman/ui/gui/gbase/gconf"
	"hangman/ui/gui/ghelper/gdialog"
	"os"

	"github.com/urfave/cli/v3"
)

const logfile string = "hangman.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// NewLexicon builds the word source the config asks for.
func NewLexicon(cfg *gconf.Config) (*lexicon.Lexicon, error) {
	opts := []lexicon.Option{lexicon.WithPolicy(lexicon.ReseedPolicyByString(cfg.Reseed))}
	if cfg.WordsFile == "" {
		return lexicon.NewLexicon(opts...), nil
	}
	return lexicon.NewLexiconFromFile(cfg.WordsFile, opts...)
}

type session struct {
	cfg     *gconf.Config
	builder *src.GameBuilder
	logger  *logx.Logx
	file    *os.File
}

func openSession(c *cli.Command) (*session, error) {
	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("error load config: %w", err)
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error open logfile: %w", err)
	}
	logger := GetLogger(file, c)
	lex, err := NewLexicon(cfg)
	if err != nil {
		file.Close()
		return nil, err
	}
	logger.Debugf("config %s, reseed per %s", cfg.Path(), lex.Policy())
	return &session{cfg: cfg, builder: src.NewBuilderGame(lex, logger), logger: logger, file: file}, nil
}

func (s *session) Close() {
	_ = s.logger.Sync()
	s.file.Close()
}

func RunGUI(c *cli.Command) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.Close()
	g, err := gui.NewGUI(s.builder, s.cfg, s.logger)
	if err != nil {
		if !c.Bool("console") {
			gdialog.Fatal("Hangman Game", err)
		}
		return err
	}
	return g.Run()
}

func RunCLI(c *cli.Command) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.Close()
	clic.EnableANSI()
	return clic.NewCLI(s.builder, clic.Render).Run()
}

// WriteConfig stores the resolved config, defaults included, at its path.
func WriteConfig(c *cli.Command) error {
	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("error load config: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error save config: %w", err)
	}
	fmt.Printf("config written to %s\n", cfg.Path())
	return nil
}

func RunHangman() error {
	cf := &cli.StringFlag{
		Name:  "config",
		Usage: "path to JSON or INI config",
		Value: gconf.DefaultFile,
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
		Value:   "info",
	}
	of := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	return (&cli.Command{
		Name:  "hangman",
		Usage: "word guessing game",
		Flags: []cli.Flag{cf, df, lf, of},
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "play in the terminal",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunCLI(c)
				},
			},
			{
				Name:  "init",
				Usage: "write the current config to the --config path",
				Action: func(ctx context.Context, c *cli.Command) error {
					return WriteConfig(c)
				},
			},
			{
				Name:  "gui",
				Usage: "play in a window",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}).Run(context.Background(), os.Args)
}
