package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/josephlewis42/pipesh/core/pipeline"
)

const (
	helpUse   = "help"
	helpShort = "Show this help."
)

// Help lists the commands, operators and filters.
func Help(commands *pipeline.CommandRegistry, filters *pipeline.FilterRegistry, args []string) (string, error) {
	cmd := &SimpleCommand{Use: helpUse}

	return cmd.Run(args, func([]string) (string, error) {
		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 8, 2, ' ', 0)

		fmt.Fprintln(w, "Commands:")
		for _, spec := range commands.List() {
			fmt.Fprintf(w, "  %s\t%s\n", spec.Use, spec.Short)
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Operators:")
		fmt.Fprintf(w, "  %s\t%s\n", "CMD | FILTER", "Send the output of CMD to FILTER.")
		fmt.Fprintf(w, "  %s\t%s\n", "CMD > FILE", "Write the output of CMD to FILE.")
		fmt.Fprintf(w, "  %s\t%s\n", "CMD >> FILE", "Append the output of CMD to FILE.")

		if filters != nil {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Filters:")
			for _, spec := range filters.List() {
				fmt.Fprintf(w, "  %s\t%s\n", spec.Use, spec.Short)
			}
		}

		if err := w.Flush(); err != nil {
			return "", err
		}
		return sb.String(), nil
	})
}
