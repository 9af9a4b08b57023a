// Package commands defines the mmtui command tree.
package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mmtui",
		Short: "Live NCAA tournament bracket in your terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation opens the UI.
			return runUI(cmd)
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addBracket(topLevel)
	addScores(topLevel)
	addPicks(topLevel)
	addVersion(topLevel)
}
