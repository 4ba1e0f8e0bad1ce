package commands

import (
	"github.com/josephlewis42/pipesh/core/vos"
)

// Mkdir creates a directory and any missing parents.
func Mkdir(virtOS vos.VOS, args []string) (string, error) {
	cmd := &SimpleCommand{Use: "mkdir <directory>", MinArgs: 1, MaxArgs: 1}

	return cmd.Run(args, func(operands []string) (string, error) {
		dir := virtOS.Abs(operands[0])

		if stat, err := virtOS.Stat(dir); err == nil && !stat.IsDir() {
			return "File already exists: " + dir, nil
		}

		if err := virtOS.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		return "Directory created: " + dir, nil
	})
}

func init() {
	addCmd("mkdir", "mkdir <directory>", "Create a directory and its parents.", Mkdir)
}
