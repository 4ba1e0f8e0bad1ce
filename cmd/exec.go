package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec LINE...",
	Short: "Run a single line and print its output.",
	Long: `Joins the arguments with spaces and runs them as one line, quote
operators to keep the local shell from interpreting them:

  pipesh exec ls '|' grep go '>' found.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		eventLogger, logFd, err := openEventLogger(configuration)
		if err != nil {
			return err
		}
		defer logFd.Close()

		session, err := newLocalSession(configuration, eventLogger, "exec", localPTY())
		if err != nil {
			return err
		}

		return session.RunLine(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
