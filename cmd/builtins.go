package cmd

import (
	"fmt"

	"github.com/josephlewis42/pipesh/core/config"
	"github.com/josephlewis42/pipesh/core/logger"
	"github.com/josephlewis42/pipesh/core/vos"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the commands and filters a session's interpreter runs.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands and filters.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration := config.Default()
		configuration.Filesystem = config.FilesystemMemory

		session, err := newLocalSession(configuration, logger.NewNopLogger(), "builtins", vos.PTY{})
		if err != nil {
			return err
		}

		for _, spec := range session.Interpreter.Commands().List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", spec.Name, spec.Short)
		}

		for _, spec := range session.Interpreter.Filters().List() {
			fmt.Fprintf(cmd.OutOrStdout(), "filter:%s\t%s\n", spec.Name, spec.Short)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
