package commands

import (
	"strings"

	"github.com/josephlewis42/pipesh/core/pipeline"
	"github.com/josephlewis42/pipesh/core/vos"
	getopt "github.com/pborman/getopt/v2"
)

// allCommands holds every command registered by init functions.
var allCommands []pipeline.CommandSpec

// addCmd registers a command, it is only called from init functions.
func addCmd(name, use, short string, cmd pipeline.CommandFunc) {
	allCommands = append(allCommands, pipeline.CommandSpec{
		Name:    name,
		Use:     use,
		Short:   short,
		Command: cmd,
	})
}

// NewRegistry builds the command registry. filters are listed by help.
func NewRegistry(filters *pipeline.FilterRegistry) *pipeline.CommandRegistry {
	specs := append([]pipeline.CommandSpec(nil), allCommands...)

	var registry *pipeline.CommandRegistry
	specs = append(specs, pipeline.CommandSpec{
		Name:  "help",
		Use:   helpUse,
		Short: helpShort,
		Command: pipeline.CommandFunc(func(_ vos.VOS, args []string) (string, error) {
			return Help(registry, filters, args)
		}),
	})

	registry = pipeline.NewCommandRegistry(specs...)
	return registry
}

// SimpleCommand parses flags and checks the number of operands before
// running a command.
type SimpleCommand struct {
	// Use holds a one line usage string starting with the command name.
	Use string
	// MinArgs is the fewest operands accepted.
	MinArgs int
	// MaxArgs is the most operands accepted, negative means unbounded.
	MaxArgs int

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// Usage returns the message shown when the command is invoked incorrectly.
func (s *SimpleCommand) Usage() string {
	return "Usage: " + s.Use
}

func (s *SimpleCommand) name() string {
	if fields := strings.Fields(s.Use); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// Run the command, if flag parsing was successful and the operands are in
// range call the callback. Otherwise the usage is the command's output.
func (s *SimpleCommand) Run(args []string, callback func(operands []string) (string, error)) (string, error) {
	opts := s.Flags()
	if err := opts.Getopt(append([]string{s.name()}, args...), nil); err != nil {
		return s.Usage(), nil
	}

	operands := opts.Args()
	if len(operands) < s.MinArgs || (s.MaxArgs >= 0 && len(operands) > s.MaxArgs) {
		return s.Usage(), nil
	}

	return callback(operands)
}
