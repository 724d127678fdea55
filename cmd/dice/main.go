// Command dice runs the quantum dice terminal front end.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opd-ai/quantum-rng/examples/dice"
)

var cli struct {
	Seed string `short:"s" help:"Hex-encoded seed for the underlying generator. Random if omitted."`
}

func main() {
	kong.Parse(&cli)

	var seed []byte
	if cli.Seed != "" {
		decoded, err := hex.DecodeString(cli.Seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dice: invalid seed: %v\n", err)
			os.Exit(1)
		}
		seed = decoded
	}

	model, err := dice.NewModel(seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dice: %v\n", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(model).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dice: %v\n", err)
		os.Exit(1)
	}
}
