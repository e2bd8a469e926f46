package logx

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevelByString(t *testing.T) {
	if GetLoggerLevelByString("warn") != zapcore.WarnLevel {
		t.Fatalf("warn not mapped")
	}
	if GetLoggerLevelByString("verbose") != zapcore.DebugLevel {
		t.Fatalf("unknown level must fall back to debug")
	}
}

func TestErrorsMirroredToErrorOutput(t *testing.T) {
	var file, errOut bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, false)
	l.SetErrorOutput(&errOut)
	l.InitLogger(&file)

	l.Debug("hidden")
	l.Info("round started")
	l.Errorf("failed to load image: %s", "c_wrong_guess_3.png")

	if strings.Contains(file.String(), "hidden") {
		t.Fatalf("debug entry written at info level")
	}
	if !strings.Contains(file.String(), "round started") {
		t.Fatalf("info entry missing from log file: %q", file.String())
	}
	if strings.Contains(errOut.String(), "round started") {
		t.Fatalf("info entry must not reach error output")
	}
	if !strings.Contains(errOut.String(), "c_wrong_guess_3.png") {
		t.Fatalf("error entry missing from error output: %q", errOut.String())
	}
}

func TestConsoleModeMirrorsErrors(t *testing.T) {
	var errOut bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, true)
	l.SetErrorOutput(&errOut)
	l.InitLogger(nil)

	l.Info("theme chosen")
	l.Errorf("failed to load image: %s", "a_wrong_guesses_2.png")

	if strings.Contains(errOut.String(), "theme chosen") {
		t.Fatalf("info entry must not reach error output")
	}
	if !strings.Contains(errOut.String(), "a_wrong_guesses_2.png") {
		t.Fatalf("error entry missing from error output in console mode: %q", errOut.String())
	}
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Infof("nothing %d", 1)
	l.Error("nothing")
}
