package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/josephlewis42/pipesh/core/vos"
)

// Touch creates an empty file.
func Touch(virtOS vos.VOS, args []string) (string, error) {
	cmd := &SimpleCommand{Use: "touch <file>", MinArgs: 1, MaxArgs: 1}

	return cmd.Run(args, func(operands []string) (string, error) {
		file := virtOS.Abs(operands[0])

		_, err := virtOS.Stat(file)
		switch {
		case err == nil:
			return "File already exists: " + file, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", err
		}

		// Some filesystems create parents implicitly, touch shouldn't.
		parent := path.Dir(file)
		if stat, err := virtOS.Stat(parent); err != nil {
			return "", err
		} else if !stat.IsDir() {
			return "", fmt.Errorf("%s: %w", parent, vos.ErrNotDirectory)
		}

		fd, err := virtOS.Create(file)
		if err != nil {
			return "", err
		}
		if err := fd.Close(); err != nil {
			return "", err
		}
		return "File created: " + file, nil
	})
}

func init() {
	addCmd("touch", "touch <file>", "Create an empty file.", Touch)
}
