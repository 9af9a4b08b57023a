package commands

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/commands/options"
	"github.com/holynakamoto/mmtui/pkg/config"
	"github.com/holynakamoto/mmtui/pkg/ncaa"
	"github.com/holynakamoto/mmtui/pkg/picks"
)

func addPicks(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	yo := &options.YearOptions{}

	cmd := &cobra.Command{
		Use:   "picks",
		Short: "score saved brackets against live results",
		Example: `
mmtui picks
mmtui picks --year 2024
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Apply()

			settings, err := config.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			client := ncaa.NewClient()
			client.OverridePath = settings.BracketOverride

			var t *bracket.Tournament
			if yo.Year != 0 {
				t, err = client.FetchBracket(cmd.Context(), yo.Year)
			} else {
				t, err = client.FetchTournament(cmd.Context())
			}
			if err != nil {
				return oo.HandleError(err)
			}

			store := picks.NewStore(settings.PicksPath)
			users := store.Users(t.Year)
			if len(users) == 0 {
				fmt.Printf("No saved brackets for %d. Run the pick wizard in the UI.\n", t.Year)
				return nil
			}

			type standing struct {
				User    string `json:"user"`
				Correct int    `json:"correct"`
				Decided int    `json:"decided"`
			}
			standings := make([]standing, 0, len(users))
			for _, user := range users {
				p, err := store.Load(user, t.Year)
				if err != nil {
					continue
				}
				correct, decided := scorePicks(t, p)
				standings = append(standings, standing{User: user, Correct: correct, Decided: decided})
			}

			if oo.JSON {
				return oo.PrintJSON(standings)
			}
			table := uitable.New()
			table.AddRow("USER", "CORRECT", "DECIDED")
			for _, s := range standings {
				table.AddRow(s.User, s.Correct, s.Decided)
			}
			fmt.Println(table)
			return nil
		},
	}

	options.AddOutputArgs(cmd, oo)
	options.AddYearArg(cmd, yo)
	topLevel.AddCommand(cmd)
}

func scorePicks(t *bracket.Tournament, p *picks.Picks) (correct, decided int) {
	for ri := range t.Regions {
		for di := range t.Regions[ri].Rounds {
			round := &t.Regions[ri].Rounds[di]
			if round.Kind == bracket.FirstFour {
				continue
			}
			for gi := range round.Games {
				g := &round.Games[gi]
				if g.Status != bracket.Final {
					continue
				}
				decided++
				if p.Correct(g) {
					correct++
				}
			}
		}
	}
	return correct, decided
}
