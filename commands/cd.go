package commands

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/josephlewis42/pipesh/core/vos"
)

// Cd changes the session's working directory. Operands are joined with
// spaces so unquoted names containing spaces still work.
func Cd(virtOS vos.VOS, args []string) (string, error) {
	cmd := &SimpleCommand{Use: "cd <directory>", MinArgs: 1, MaxArgs: -1}

	return cmd.Run(args, func(operands []string) (string, error) {
		if isDotRun(operands[0]) {
			return cmd.Usage(), nil
		}

		dir := strings.TrimSpace(strings.Join(operands, " "))
		err := virtOS.Chdir(dir)
		switch {
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, vos.ErrNotDirectory):
			return "Directory not found: " + dir, nil
		case err != nil:
			return "", err
		default:
			return "Directory changed: " + dir, nil
		}
	})
}

// isDotRun reports whether s is made of dots but isn't "..".
func isDotRun(s string) bool {
	return s != "" && s != ".." && strings.Trim(s, ".") == ""
}

func init() {
	addCmd("cd", "cd <directory>", "Change the working directory.", Cd)
}
