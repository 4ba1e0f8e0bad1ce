package filters

import (
	"strings"

	"github.com/josephlewis42/pipesh/core/vos"
)

// Uniq keeps the first occurrence of every distinct line of input, in input
// order.
func Uniq(_ vos.VOS, input string, args []string) (string, error) {
	if len(args) > 0 {
		return "Usage: uniq", nil
	}

	seen := make(map[string]bool)
	var sb strings.Builder
	for _, line := range splitLines(input) {
		if seen[line] {
			continue
		}
		seen[line] = true
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
