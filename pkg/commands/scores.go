package commands

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/commands/options"
	"github.com/holynakamoto/mmtui/pkg/config"
	"github.com/holynakamoto/mmtui/pkg/ncaa"
)

func addScores(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "print today's tournament scoreboard",
		Example: `
mmtui scores
mmtui scores --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Apply()

			settings, err := config.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			client := ncaa.NewClient()
			client.OverridePath = settings.BracketOverride

			games, err := client.FetchScoreboard(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return oo.PrintJSON(games)
			}
			if len(games) == 0 {
				fmt.Println("No games on the board.")
				return nil
			}

			table := uitable.New()
			table.MaxColWidth = 28
			table.AddRow("MATCHUP", "SCORE", "STATUS", "VENUE")
			for i := range games {
				g := &games[i]
				table.AddRow(matchup(g), scoreCol(g), statusCol(g), g.Location)
			}
			fmt.Println(table)
			return nil
		},
	}

	options.AddOutputArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}

func matchup(g *bracket.Game) string {
	return fmt.Sprintf("(%d) %s vs (%d) %s",
		g.Top.Seed, g.Top.DisplayName(), g.Bottom.Seed, g.Bottom.DisplayName())
}

func scoreCol(g *bracket.Game) string {
	if g.Score == nil {
		return "-"
	}
	return fmt.Sprintf("%d-%d", g.Score.Top, g.Score.Bottom)
}

func statusCol(g *bracket.Game) string {
	switch g.Status {
	case bracket.InProgress:
		return fmt.Sprintf("%dH %s", g.Period, g.Clock)
	case bracket.Final:
		return "FINAL"
	case bracket.Postponed:
		return "PPD"
	}
	if g.StartTime != nil {
		return g.StartTime.Local().Format("Mon 03:04 PM")
	}
	return "Scheduled"
}
