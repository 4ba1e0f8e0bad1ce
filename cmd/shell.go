package cmd

import (
	"os"

	"github.com/josephlewis42/pipesh/core"
	"github.com/josephlewis42/pipesh/core/vos"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// localPTY describes the process's own terminal.
func localPTY() vos.PTY {
	pty := vos.PTY{
		Width:  80,
		Height: 24,
		Term:   os.Getenv("TERM"),
		IsPTY:  term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
	}

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		pty.Width = width
		pty.Height = height
	}

	return pty
}

// shellCmd runs the interpreter on the local terminal.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run an interactive shell on this terminal.",
	Args:  cobra.ExactArgs(0),
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

		session, err := newLocalSession(configuration, eventLogger, "shell", localPTY())
		if err != nil {
			return err
		}

		shell, err := core.NewShell(session)
		if err != nil {
			return err
		}
		defer shell.Close()

		return shell.Run()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
