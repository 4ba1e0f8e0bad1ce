package commands

import (
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/josephlewis42/pipesh/core/vos"
)

// Cat concatenates the contents of the files. Nothing is output if any file
// can't be read.
func Cat(virtOS vos.VOS, args []string) (string, error) {
	cmd := &SimpleCommand{Use: "cat <file>...", MinArgs: 1, MaxArgs: -1}

	return cmd.Run(args, func(operands []string) (string, error) {
		var sb strings.Builder
		for _, name := range operands {
			stat, err := virtOS.Stat(name)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				return "File not found: " + name, nil
			case err != nil:
				return "", err
			case stat.IsDir():
				return "Is a directory: " + name, nil
			}

			fd, err := virtOS.Open(name)
			if err != nil {
				return "", err
			}
			_, err = io.Copy(&sb, fd)
			fd.Close()
			if err != nil {
				return "", err
			}
		}
		return sb.String(), nil
	})
}

func init() {
	addCmd("cat", "cat <file>...", "Print the contents of files.", Cat)
}
