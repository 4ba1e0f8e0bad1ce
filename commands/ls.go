package commands

import (
	"strings"

	"github.com/josephlewis42/pipesh/core/vos"
	"github.com/spf13/afero"
)

// Ls lists the working directory one name per line, sorted by name.
func Ls(virtOS vos.VOS, args []string) (string, error) {
	cmd := &SimpleCommand{Use: "ls [-a] [-r]"}
	listAll := cmd.Flags().Bool('a', "don't ignore entries starting with .")
	reverse := cmd.Flags().Bool('r', "reverse order while sorting")

	return cmd.Run(args, func([]string) (string, error) {
		// ReadDir sorts by name.
		entries, err := afero.ReadDir(virtOS, ".")
		if err != nil {
			return "", err
		}

		var names []string
		for _, entry := range entries {
			name := entry.Name()
			if !*listAll && strings.HasPrefix(name, ".") {
				continue
			}
			names = append(names, name)
		}

		if *reverse {
			for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
				names[i], names[j] = names[j], names[i]
			}
		}

		var sb strings.Builder
		for _, name := range names {
			sb.WriteString(name)
			sb.WriteString("\n")
		}
		return sb.String(), nil
	})
}

func init() {
	addCmd("ls", "ls [-a] [-r]", "List the working directory, -a shows hidden entries and -r reverses the order.", Ls)
}
