package main

import (
	"fmt"
	"hangman/ui"
	"os"
)

func main() {
	if err := ui.RunHangman(); err != nil {
		fmt.Fprintf(os.Stderr, "error hangman: %v\n", err)
		os.Exit(1)
	}
}
