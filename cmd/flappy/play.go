package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagHighScore string
	flagLogFile   string
	flagClock     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game session in this terminal.

Controls:
  Space/Up/W/click  - Start and flap
  R/Enter           - Restart (one second after game over)
  Ctrl+S            - Save a text screenshot
  Q/Esc/Ctrl+C      - Quit

The high score is kept in <config dir>/FlappyBird/highscore.txt.

Examples:
  flappy play
  flappy play --seed 42 --clock ticks
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command runs play
// too, so it carries the same flags.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagHighScore, "highscore", "", "Path to the high score file")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded when empty)")
	cmd.Flags().StringVar(&flagClock, "clock", "", "Override session clock: wall or ticks")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The game owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagClock != "" {
		cfg.Session.Clock = flagClock
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	hsPath := flagHighScore
	if hsPath == "" {
		if hsPath, err = storage.DefaultHighScorePath(); err != nil {
			return err
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	history := openHistory(logger)
	if history != nil {
		defer history.Close()
	}

	game := flappy.New(cfg,
		flappy.WithHighScoreStore(storage.NewFileStore(hsPath)),
		flappy.WithLogger(logger),
	)

	logger.Info("starting game", "highscore_file", hsPath, "fps", rc.TickRate, "clock", cfg.Session.Clock)

	if err := tui.Run(game, rc, tui.Options{
		History: history,
		Player:  playerName(),
		Logger:  logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openHistory opens the run history database. The game still works without it.
func openHistory(logger *log.Logger) *storage.Store {
	path, err := dbPath()
	if err != nil {
		logger.Warn("no run history", "error", err)
		return nil
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "error", err)
		return nil
	}
	return store
}

// playerName is the OS user name, recorded with each local run.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.DefaultPlayer
}
