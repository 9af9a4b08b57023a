package commands

import (
	"github.com/spf13/cobra"

	"github.com/holynakamoto/mmtui/pkg/config"
	"github.com/holynakamoto/mmtui/pkg/logging"
	"github.com/holynakamoto/mmtui/pkg/ncaa"
	"github.com/holynakamoto/mmtui/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the live bracket interface",
		Example: `
mmtui ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	// The alternate screen owns stdout; logs go to a file.
	log, err := logging.NewFileLogger(settings.LogPath)
	if err != nil {
		log = logging.Nop()
	}
	defer func() { _ = log.Sync() }()

	client := ncaa.NewClient()
	client.OverridePath = settings.BracketOverride
	return app.Run(cmd.Context(), client, settings, log)
}
