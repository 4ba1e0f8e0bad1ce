package pipeline

import (
	"strings"

	"github.com/josephlewis42/pipesh/core/decor"
)

// ErrorKind classifies a failed stage.
type ErrorKind int

const (
	UnknownCommand ErrorKind = iota
	CommandFault
	UnknownFilter
	FilterFault
	WriteFailure
)

// String returns the name used in the event log.
func (k ErrorKind) String() string {
	switch k {
	case UnknownCommand:
		return "unknown_command"
	case CommandFault:
		return "command_fault"
	case UnknownFilter:
		return "unknown_filter"
	case FilterFault:
		return "filter_fault"
	case WriteFailure:
		return "write_failure"
	default:
		return "unknown"
	}
}

func (k ErrorKind) context() string {
	switch k {
	case UnknownCommand:
		return "Unknown command"
	case CommandFault:
		return "Error executing command"
	case UnknownFilter:
		return "Unknown filter"
	case FilterFault:
		return "Error applying filter"
	case WriteFailure:
		return "Error writing to"
	default:
		return "Error"
	}
}

// StageError describes why a stage produced no regular output.
type StageError struct {
	Kind ErrorKind
	// Subject is the command, filter or file the stage named.
	Subject string
	// Detail is the underlying failure, if any.
	Detail string
}

func (e *StageError) Error() string {
	return e.Render(decor.Plain())
}

// Render formats the error with the context in red and the subject in
// yellow.
func (e *StageError) Render(p *decor.Printer) string {
	var sb strings.Builder
	sb.WriteString(p.Red("Error! " + e.Kind.context() + ": "))
	sb.WriteString(p.Yellow(e.Subject))
	if e.Detail != "" {
		sb.WriteString(" - ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

// Result is the value carried between stages.
type Result struct {
	Text string
	Err  *StageError
}

func textResult(text string) Result {
	return Result{Text: text}
}

func errorResult(kind ErrorKind, subject, detail string) Result {
	return Result{Err: &StageError{Kind: kind, Subject: subject, Detail: detail}}
}

// Render turns the result into the text the next stage or the caller sees.
func (r Result) Render(p *decor.Printer) string {
	if r.Err != nil {
		return r.Err.Render(p)
	}
	return r.Text
}
