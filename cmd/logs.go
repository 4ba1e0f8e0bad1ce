package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/josephlewis42/pipesh/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log", "events"},
	Short:   "Explore the event log.",
}

// openEventLog opens the log named on the command line, or the configured
// app log if there is none.
func openEventLog(args []string) (io.ReadCloser, error) {
	if len(args) > 0 {
		return os.Open(args[0])
	}

	configuration, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if configuration.AppLog == "" {
		return nil, errors.New("no app_log configured, pass a log file")
	}
	return configuration.ReadAppLog()
}

// reportCommand builds a subcommand that feeds every log entry to the
// report returned by newReport then prints it as YAML.
func reportCommand(use, short string, newReport func() (interface{}, func(*logger.LogEntry))) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [FILE]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			fd, err := openEventLog(args)
			if err != nil {
				return err
			}
			defer fd.Close()

			report, update := newReport()
			if err := logger.ReadJSONLinesLog(fd, update); err != nil {
				return err
			}

			out, err := yaml.Marshal(report)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.AddCommand(reportCommand("report", "Show a report of events.", func() (interface{}, func(*logger.LogEntry)) {
		report := &logger.Report{}
		return report, report.Update
	}))

	logsCmd.AddCommand(reportCommand("bugs", "Show failures and panics that may be bugs.", func() (interface{}, func(*logger.LogEntry)) {
		report := logger.NewBugReport()
		return report, report.Update
	}))

	logsCmd.AddCommand(reportCommand("sessions", "Show the lines run in each session.", func() (interface{}, func(*logger.LogEntry)) {
		report := &logger.InteractionReport{}
		return report, report.Update
	}))
}
