// Package commands provides Bubble Tea commands for TUI operations.
package commands

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/berth-dev/quiz/banks"
	"github.com/berth-dev/quiz/internal/bank"
	"github.com/berth-dev/quiz/internal/config"
	"github.com/berth-dev/quiz/internal/tui"
)

// LoadBankCmd loads the configured bank and arranges it for play.
func LoadBankCmd(cfg config.BankConfig) tea.Cmd {
	return func() tea.Msg {
		return LoadBank(cfg)
	}
}

// LoadBank is the synchronous body of LoadBankCmd, shared with the
// non-interactive fallback.
func LoadBank(cfg config.BankConfig) tui.BankLoadedMsg {
	b, err := bank.Load(cfg.Path)
	if err != nil {
		return tui.BankLoadedMsg{Err: err}
	}

	name := banks.DefaultName
	if cfg.Path != "" {
		name = filepath.Base(cfg.Path)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return tui.BankLoadedMsg{
		Name:      name,
		Title:     b.Title,
		Questions: b.Arrange(cfg.Shuffle, cfg.Limit, seed),
	}
}
