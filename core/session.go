package core

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/josephlewis42/pipesh/commands"
	"github.com/josephlewis42/pipesh/core/config"
	"github.com/josephlewis42/pipesh/core/decor"
	"github.com/josephlewis42/pipesh/core/logger"
	"github.com/josephlewis42/pipesh/core/pipeline"
	"github.com/josephlewis42/pipesh/core/vos"
	"github.com/josephlewis42/pipesh/filters"
)

// DefaultPrompt is used when the configuration has no prompt.
const DefaultPrompt = `\w\$ `

// Session is a single user's interpreter and working directory.
type Session struct {
	VirtualOS   *vos.SessionOS
	Interpreter *pipeline.Interpreter

	configuration *config.Configuration
	logger        *logger.SessionLogger
}

// NewSession wires the registries and interpreter for virtOS. If start is
// non-nil it is completed from virtOS and recorded.
func NewSession(configuration *config.Configuration, virtOS *vos.SessionOS, sessionLogger *logger.SessionLogger, start *logger.SessionStart) *Session {
	if sessionLogger == nil {
		sessionLogger = logger.NewNopLogger().Sessionless()
	}

	printer := decor.NewPrinter(configuration.Color, virtOS.GetPTY())
	filterRegistry := filters.NewRegistry(filters.Options{
		PageSize: configuration.PageSize,
		Printer:  printer,
	})
	commandRegistry := commands.NewRegistry(filterRegistry)

	if start != nil {
		start.StartDir = virtOS.Getwd()
		start.IsPty = virtOS.GetPTY().IsPTY
		sessionLogger.Record(start)
	}

	return &Session{
		VirtualOS: virtOS,
		Interpreter: pipeline.NewInterpreter(virtOS, commandRegistry, filterRegistry, pipeline.Options{
			Recorder: sessionLogger,
			Printer:  printer,
		}),
		configuration: configuration,
		logger:        sessionLogger,
	}
}

// ExecuteLine runs a single line and returns its output.
func (s *Session) ExecuteLine(line string) string {
	return s.Interpreter.ExecuteLine(line)
}

// Prompt expands the configured prompt, \w is the working directory and \$
// is a dollar sign.
func (s *Session) Prompt() string {
	prompt := s.configuration.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	prompt = strings.ReplaceAll(prompt, `\w`, s.VirtualOS.Getwd())
	prompt = strings.ReplaceAll(prompt, `\$`, "$")
	return prompt
}

// Run reads lines from the session's input until exit or the end of input,
// writing each line's output to stdout.
func (s *Session) Run() error {
	for {
		line, err := s.VirtualOS.ReadLine(s.Prompt())
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, vos.ErrInterrupt):
			continue
		case err != nil:
			return err
		}

		if strings.TrimSpace(line) == "exit" {
			return nil
		}

		if err := s.RunLine(line); err != nil {
			return err
		}
	}
}

// RunLine executes a line and writes its output to the session's stdout.
func (s *Session) RunLine(line string) error {
	return writeOutput(s.VirtualOS.Stdout(), s.ExecuteLine(line))
}

// writeOutput prints non-empty output on its own line.
func writeOutput(w io.Writer, out string) error {
	if out == "" {
		return nil
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := fmt.Fprint(w, out)
	return err
}
