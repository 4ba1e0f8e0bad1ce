package commands

import (
	"errors"
	"io"
	"io/fs"

	"github.com/josephlewis42/pipesh/core/vos"
)

// Rmdir removes an empty directory.
func Rmdir(virtOS vos.VOS, args []string) (string, error) {
	cmd := &SimpleCommand{Use: "rmdir <directory>", MinArgs: 1, MaxArgs: 1}

	return cmd.Run(args, func(operands []string) (string, error) {
		dir := virtOS.Abs(operands[0])

		stat, err := virtOS.Stat(dir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return "Directory not found: " + dir, nil
		case err != nil:
			return "", err
		case !stat.IsDir():
			return "Directory not found: " + dir, nil
		}

		// Some filesystems remove directories with contents.
		file, err := virtOS.Open(dir)
		if err != nil {
			return "", err
		}
		contents, err := file.Readdirnames(1)
		file.Close()
		if err != nil && len(contents) == 0 && !isEOF(err) {
			return "", err
		}
		if len(contents) > 0 {
			return "Directory not empty: " + dir, nil
		}

		if err := virtOS.Remove(dir); err != nil {
			return "", err
		}
		return "Directory removed: " + dir, nil
	})
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

func init() {
	addCmd("rmdir", "rmdir <directory>", "Remove an empty directory.", Rmdir)
}
