package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/tui"
)

// TuiCmd launches the interactive dashboard. It is the default command.
type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	user, err := ctx.DefaultUser()
	if err != nil {
		return err
	}

	model, err := tui.New(ctx.Store, user)
	if err != nil {
		return fmt.Errorf("failed to start dashboard: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with error: %w", err)
	}
	return nil
}
