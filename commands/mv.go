package commands

import (
	"errors"
	"io/fs"
	"path"

	"github.com/josephlewis42/pipesh/core/vos"
)

// Mv moves or renames a file. If the destination is an existing directory
// the source is moved into it.
func Mv(virtOS vos.VOS, args []string) (string, error) {
	cmd := &SimpleCommand{Use: "mv <source> <destination>", MinArgs: 2, MaxArgs: 2}

	return cmd.Run(args, func(operands []string) (string, error) {
		source := virtOS.Abs(operands[0])
		destination := virtOS.Abs(operands[1])

		_, err := virtOS.Stat(source)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return "Source not found: " + operands[0], nil
		case err != nil:
			return "", err
		}

		if stat, err := virtOS.Stat(destination); err == nil && stat.IsDir() {
			destination = path.Join(destination, path.Base(source))
		}

		if err := virtOS.Rename(source, destination); err != nil {
			return "", err
		}
		return "Moved/Renamed: " + source + " -> " + destination, nil
	})
}

func init() {
	addCmd("mv", "mv <source> <destination>", "Move or rename a file.", Mv)
}
