package commands

import (
	"github.com/josephlewis42/pipesh/core/vos"
)

// Pwd prints the working directory.
func Pwd(virtOS vos.VOS, args []string) (string, error) {
	cmd := &SimpleCommand{Use: "pwd"}

	return cmd.Run(args, func([]string) (string, error) {
		return virtOS.Getwd(), nil
	})
}

func init() {
	addCmd("pwd", "pwd", "Print the current working directory.", Pwd)
}
