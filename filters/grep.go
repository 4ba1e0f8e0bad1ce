package filters

import (
	"regexp"
	"strings"

	"github.com/josephlewis42/pipesh/core/vos"
)

// Grep keeps the lines of input containing the literal pattern formed by
// joining args, matched without regard to case.
func Grep(_ vos.VOS, input string, args []string) (string, error) {
	pattern := strings.TrimSpace(strings.Join(args, " "))
	if pattern == "" {
		return "Usage: grep <pattern>", nil
	}

	match := literalMatcher(pattern)

	var sb strings.Builder
	for _, line := range splitLines(input) {
		if match(line) {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// literalMatcher matches lines containing pattern in any case. Patterns the
// regexp parser rejects, such as invalid UTF-8, fall back to comparing
// lower-cased bytes.
func literalMatcher(pattern string) func(line string) bool {
	regex, err := regexp.Compile("(?i)" + regexp.QuoteMeta(pattern))
	if err == nil {
		return regex.MatchString
	}

	lowered := strings.ToLower(pattern)
	return func(line string) bool {
		return strings.Contains(strings.ToLower(line), lowered)
	}
}
