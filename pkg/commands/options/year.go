package options

import "github.com/spf13/cobra"

// YearOptions selects a tournament season.
type YearOptions struct {
	Year int
}

func AddYearArg(cmd *cobra.Command, yo *YearOptions) {
	cmd.Flags().IntVarP(&yo.Year, "year", "y", 0,
		"Tournament year. Defaults to the current season.")
}
