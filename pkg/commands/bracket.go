package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/commands/options"
	"github.com/holynakamoto/mmtui/pkg/config"
	"github.com/holynakamoto/mmtui/pkg/ncaa"
	"github.com/holynakamoto/mmtui/pkg/printers"
)

func addBracket(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	yo := &options.YearOptions{}
	roundArg := ""
	allRounds := false

	cmd := &cobra.Command{
		Use:   "bracket",
		Short: "print the bracket to stdout",
		Example: `
mmtui bracket
mmtui bracket --year 2024 --round sweet16
mmtui bracket --all --json
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

			if oo.JSON {
				return oo.PrintJSON(t)
			}

			pp := &printers.PrettyPrint{AllRounds: allRounds}
			if roundArg != "" {
				kind, ok := parseRound(roundArg)
				if !ok {
					return oo.HandleError(errUnknownRound(roundArg))
				}
				pp.Round = kind
				pp.RoundSet = true
			}
			pp.Tournament(t)
			return nil
		},
	}

	options.AddOutputArgs(cmd, oo)
	options.AddYearArg(cmd, yo)
	cmd.Flags().StringVarP(&roundArg, "round", "r", "", "Limit to one round (first4, first, second, sweet16, elite8, final4, championship).")
	cmd.Flags().BoolVarP(&allRounds, "all", "a", false, "Print every round, including ones not yet started.")

	topLevel.AddCommand(cmd)
}

func parseRound(s string) (bracket.RoundKind, bool) {
	switch strings.ToLower(s) {
	case "first4", "firstfour", "playin":
		return bracket.FirstFour, true
	case "first", "1", "r64":
		return bracket.First, true
	case "second", "2", "r32":
		return bracket.Second, true
	case "sweet16", "s16":
		return bracket.Sweet16, true
	case "elite8", "e8":
		return bracket.Elite8, true
	case "final4", "finalfour", "f4":
		return bracket.FinalFour, true
	case "championship", "title":
		return bracket.Championship, true
	}
	return bracket.First, false
}

type errUnknownRound string

func (e errUnknownRound) Error() string {
	return "unknown round: " + string(e)
}
