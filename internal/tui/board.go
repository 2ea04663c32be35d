package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ProtoSG/momentum-front/internal/app"
)

// RunDashboard opens the interactive dashboard: mission list on the left,
// pet panel on the right, as the Momentum web dashboard lays them out.
func RunDashboard(ctx context.Context, svc *app.Service, out io.Writer) error {
	m := newDashboardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
