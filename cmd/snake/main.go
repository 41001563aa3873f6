package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/terminal"
)

var (
	fpsFlag  = flag.Int("fps", constants.DefaultFPS, "Game ticks per second")
	muteFlag = flag.Bool("mute", false, "Disable sound")
)

func main() {
	// Restore the terminal before reporting a crash, otherwise the panic
	// output lands on the alternate screen and vanishes with it.
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nSNAKE CRASHED: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	fps := *fpsFlag
	if fps < 1 {
		fps = constants.DefaultFPS
	}

	sounds := audio.NewMutedPlayer()
	if !*muteFlag {
		sounds = audio.NewPlayer()
	}

	con, err := terminal.New(constants.BoardWidth, constants.BoardHeight, fps)
	if err != nil {
		if errors.Is(err, terminal.ErrTooSmall) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		}
		os.Exit(1)
	}
	defer con.Fini()

	engine.NewRunner(con).Run(game.NewPlayState(sounds))
}
