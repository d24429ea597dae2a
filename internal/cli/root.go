// Package cli defines Cobra command definitions for the quiz CLI.
// This file contains the root command, which plays a quiz.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/berth-dev/quiz/internal/config"
	"github.com/berth-dev/quiz/internal/log"
	"github.com/berth-dev/quiz/internal/quiz"
	"github.com/berth-dev/quiz/internal/tui"
	"github.com/berth-dev/quiz/internal/tui/app"
	"github.com/berth-dev/quiz/internal/tui/commands"
)

var version = "dev" // set via ldflags at build time

// Flags for the root command. Only flags the user set override the config.
var (
	bankFlag      string
	shuffleFlag   bool
	limitFlag     int
	timeLimitFlag int
	seedFlag      int64
	noBellFlag    bool
	noLogFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Timed multiple-choice quiz in the terminal",
	Long: `Quiz plays a multiple-choice question bank against the clock.
Each question has a countdown; answer with the number keys or arrows
and Enter. Without a terminal, answers are read line by line from stdin.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine.
		_ = godotenv.Load()
	},
	RunE: runPlay,
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&bankFlag, "bank", "", "Question bank file (.json, .yaml); default is the built-in bank")
	f.BoolVar(&shuffleFlag, "shuffle", false, "Shuffle question order")
	f.IntVar(&limitFlag, "limit", 0, "Play at most this many questions (0 for all)")
	f.IntVar(&timeLimitFlag, "time-limit", 0, "Seconds allowed per question")
	f.Int64Var(&seedFlag, "seed", 0, "Shuffle seed (0 for time based)")
	f.BoolVar(&noBellFlag, "no-bell", false, "Do not ring the terminal bell on answers")
	f.BoolVar(&noLogFlag, "no-log", false, "Do not append events to .quiz/log.jsonl")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(reportCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	projectRoot, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := loadConfig(cmd, projectRoot)
	if err != nil {
		return err
	}

	logger := openLogger(cmd.ErrOrStderr(), cfg, projectRoot)
	defer logger.Close()

	if tui.IsTTY() {
		return tui.Run(app.New(cfg, logger), cfg.UI.AltScreen)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var bell io.Writer
	if cfg.UI.Bell {
		bell = cmd.ErrOrStderr()
	}
	return playPlain(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), bell, cfg, logger)
}

// loadConfig reads .quiz/config.yaml under projectRoot and applies the
// flags the user set.
func loadConfig(cmd *cobra.Command, projectRoot string) (*config.Config, error) {
	cfg, err := config.ReadConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("bank") {
		cfg.Bank.Path = bankFlag
	}
	if f.Changed("shuffle") {
		cfg.Bank.Shuffle = shuffleFlag
	}
	if f.Changed("limit") {
		cfg.Bank.Limit = limitFlag
	}
	if f.Changed("seed") {
		cfg.Bank.Seed = seedFlag
	}
	if f.Changed("time-limit") {
		cfg.Timer.LimitSeconds = timeLimitFlag
	}
	if noBellFlag {
		cfg.UI.Bell = false
	}
	if noLogFlag {
		cfg.Log.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger returns the event logger, or nil when logging is off or the
// log cannot be opened. A broken log never stops the quiz.
func openLogger(stderr io.Writer, cfg *config.Config, projectRoot string) *log.Logger {
	if !cfg.Log.Enabled {
		return nil
	}
	logger, err := log.NewLogger(projectRoot)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: event log disabled: %v\n", err)
		return nil
	}
	return logger
}

// playPlain runs the line-oriented quiz used when there is no terminal.
func playPlain(ctx context.Context, in io.Reader, out, bell io.Writer, cfg *config.Config, logger *log.Logger) error {
	loaded := commands.LoadBank(cfg.Bank)
	if loaded.Err != nil {
		return fmt.Errorf("loading bank: %w", loaded.Err)
	}
	logger.Started(loaded.Name, len(loaded.Questions))

	title := cfg.UI.Title
	if title == "" {
		title = loaded.Title
	}

	runner := &tui.FallbackRunner{
		In:     in,
		Out:    out,
		Bell:   bell,
		Logger: logger,
		Title:  title,
		Settings: quiz.Settings{
			TimeLimit:    cfg.Timer.LimitSeconds,
			AdvanceDelay: cfg.Timer.AdvanceDelay(),
		},
	}

	_, err := runner.Run(ctx, loaded.Questions)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
