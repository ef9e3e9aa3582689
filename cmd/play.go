package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/trknhr/phraseguess/internal/config"
	"github.com/trknhr/phraseguess/internal/game"
	"github.com/trknhr/phraseguess/internal/logger"
	"github.com/trknhr/phraseguess/internal/score"
	"github.com/trknhr/phraseguess/internal/tui"
)

func newPlayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the guessing game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
}

func newGame(opts *rootOptions, cmd *cobra.Command) (*game.Game, error) {
	if opts.cfg.Source == config.SourcePhraseFinder {
		return nil, fmt.Errorf("play needs a local corpus: use --source file or --source db")
	}
	c, err := opts.loadCorpus(cmd.Context(), nil, opts.span)
	if err != nil {
		return nil, err
	}
	gc := opts.cfg.Game
	settings := game.Settings{
		ContextLength:  gc.ContextLength,
		Direction:      opts.direction(),
		MinOccurrences: gc.MinOccurrences,
		MaxGuesses:     gc.MaxGuesses,
	}
	seed := uint64(time.Now().UnixNano())
	return game.New(score.NewScorer(c), settings, rand.NewPCG(seed, seed>>32)), nil
}

func runPlay(cmd *cobra.Command, opts *rootOptions) error {
	g, err := newGame(opts, cmd)
	if err != nil {
		return err
	}
	model, err := tui.NewTuiModel(g, opts.cfg.Game.Reveal)
	if err != nil {
		return err
	}

	// keep log lines off the alternate screen
	if err := logger.Init(opts.cfg.LogFile, opts.cfg.LogLevel, true); err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d points in %d rounds\n", g.Points(), g.Rounds())
	return nil
}
