package options

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// OutputOptions controls plain-stdout rendering.
type OutputOptions struct {
	JSON    bool
	NoColor bool
}

func AddOutputArgs(cmd *cobra.Command, oo *OutputOptions) {
	cmd.Flags().BoolVar(&oo.JSON, "json", false,
		"Output as JSON.")
	cmd.Flags().BoolVar(&oo.NoColor, "no-color", false,
		"Disable color output.")
}

// Apply resolves the color mode: the flag wins, otherwise color is on
// only when stdout is a terminal.
func (o *OutputOptions) Apply() {
	if o.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

// PrintJSON marshals v to stdout.
func (o *OutputOptions) PrintJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
