package pipeline

import "strings"

// Operator joins a stage to the one before it.
type Operator int

const (
	// OpNone marks the head stage.
	OpNone Operator = iota
	// OpPipe feeds the previous output to a filter.
	OpPipe
	// OpOverwrite truncates a file and writes the previous output to it.
	OpOverwrite
	// OpAppend appends the previous output to a file.
	OpAppend
)

func (o Operator) String() string {
	switch o {
	case OpPipe:
		return "|"
	case OpOverwrite:
		return ">"
	case OpAppend:
		return ">>"
	default:
		return ""
	}
}

func parseOperator(word string) (Operator, bool) {
	switch word {
	case "|":
		return OpPipe, true
	case ">":
		return OpOverwrite, true
	case ">>":
		return OpAppend, true
	default:
		return OpNone, false
	}
}

// Stage is one segment of a line.
type Stage struct {
	Op   Operator
	Text string
}

// String returns the stage as it would be typed.
func (s Stage) String() string {
	if s.Op == OpNone {
		return s.Text
	}
	return strings.TrimSpace(s.Op.String() + " " + s.Text)
}

// Tokenize splits a line into stages on the whole-word operators |, > and
// >>. Operators glued to other characters are ordinary text. A blank line
// yields no stages, a trailing operator yields a final empty stage.
func Tokenize(line string) []Stage {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}

	var stages []Stage
	current := Stage{Op: OpNone}
	var text []string
	for _, word := range words {
		op, ok := parseOperator(word)
		if !ok {
			text = append(text, word)
			continue
		}

		current.Text = strings.Join(text, " ")
		stages = append(stages, current)
		current = Stage{Op: op}
		text = nil
	}
	current.Text = strings.Join(text, " ")
	return append(stages, current)
}
