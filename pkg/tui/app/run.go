package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/holynakamoto/mmtui/pkg/config"
)

// Run launches the full-screen UI and blocks until it exits.
func Run(ctx context.Context, client Fetcher, settings *config.Settings, log *zap.Logger) error {
	p := tea.NewProgram(New(ctx, client, settings, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
