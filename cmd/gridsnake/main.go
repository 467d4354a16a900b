package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/vinser/gridsnake/internal/app"
	"github.com/vinser/gridsnake/internal/flags"
	"github.com/vinser/gridsnake/internal/logging"
	"github.com/vinser/gridsnake/internal/score"
)

var version = "dev"

func main() {
	fl := flags.Parse()

	logFile, err := logging.Setup(fl.LogFile, fl.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
		logging.Discard()
	} else {
		defer logFile.Close()
	}

	scorePath, err := score.DefaultPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	scores := score.NewFile(scorePath)

	st := app.LoadState(fl, scores)
	if err := st.AttachSound(fl.Volume); err != nil {
		log.Warn().Err(err).Msg("sound disabled")
	}
	defer st.SoundManager.Close()

	m := app.New(app.Config{
		State:   st,
		Scores:  scores,
		Rand:    app.NewRand(fl.Seed),
		Version: version,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
