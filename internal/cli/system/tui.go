package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifelens/lifelens/internal/cli"
	"github.com/lifelens/lifelens/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	model := tui.NewModel(ctx.Store)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
