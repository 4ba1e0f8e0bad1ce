package commands

import (
	"errors"
	"io/fs"

	"github.com/josephlewis42/pipesh/core/vos"
)

// Rm removes a file, directories are left to rmdir.
func Rm(virtOS vos.VOS, args []string) (string, error) {
	cmd := &SimpleCommand{Use: "rm <file>", MinArgs: 1, MaxArgs: 1}

	return cmd.Run(args, func(operands []string) (string, error) {
		file := virtOS.Abs(operands[0])

		stat, err := virtOS.Stat(file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return "File not found: " + operands[0], nil
		case err != nil:
			return "", err
		case stat.IsDir():
			return "Is a directory: " + operands[0], nil
		}

		if err := virtOS.Remove(file); err != nil {
			return "", err
		}
		return "Removed: " + file, nil
	})
}

func init() {
	addCmd("rm", "rm <file>", "Remove a file.", Rm)
}
