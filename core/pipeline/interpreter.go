package pipeline

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/josephlewis42/pipesh/core/decor"
	"github.com/josephlewis42/pipesh/core/logger"
	"github.com/josephlewis42/pipesh/core/vos"
)

// EventRecorder stores interpreter events.
type EventRecorder interface {
	Record(event logger.LogType) error
}

// Options configures an Interpreter, the zero value is usable.
type Options struct {
	// Recorder receives events, defaults to discarding them.
	Recorder EventRecorder
	// Printer decorates error text, defaults to no color.
	Printer *decor.Printer
}

// Interpreter executes lines against a single session.
type Interpreter struct {
	virtOS   vos.VOS
	commands *CommandRegistry
	filters  *FilterRegistry
	recorder EventRecorder
	printer  *decor.Printer
}

// NewInterpreter creates an interpreter bound to virtOS.
func NewInterpreter(virtOS vos.VOS, commands *CommandRegistry, filters *FilterRegistry, opts Options) *Interpreter {
	if opts.Recorder == nil {
		opts.Recorder = logger.NewNopLogger().Sessionless()
	}
	if opts.Printer == nil {
		opts.Printer = decor.Plain()
	}

	return &Interpreter{
		virtOS:   virtOS,
		commands: commands,
		filters:  filters,
		recorder: opts.Recorder,
		printer:  opts.Printer,
	}
}

// Commands returns the registry used for head stages.
func (in *Interpreter) Commands() *CommandRegistry {
	return in.commands
}

// Filters returns the registry used for piped stages.
func (in *Interpreter) Filters() *FilterRegistry {
	return in.filters
}

// ExecuteLine runs a line and returns its final text. Failures are reported
// inline, it never panics. Lines ending in an interactive filter return an
// empty string because the filter already wrote to the terminal.
func (in *Interpreter) ExecuteLine(line string) string {
	stages := Tokenize(line)
	if len(stages) == 0 {
		return ""
	}
	in.record(&logger.RunLine{Line: strings.TrimSpace(line), Stages: len(stages)})

	result := in.runCommand(stages[0].Text)
	for i := 1; i < len(stages); i++ {
		stage := stages[i]
		carried := result.Render(in.printer)

		switch stage.Op {
		case OpPipe:
			var done bool
			result, done = in.runFilter(stage.Text, carried)
			if done {
				in.recordUnreachable(stage, stages[i+1:])
				return ""
			}
		case OpOverwrite, OpAppend:
			result = in.redirect(stage, carried)
		}
	}

	return result.Render(in.printer)
}

func (in *Interpreter) runCommand(text string) Result {
	words := strings.Fields(text)
	if len(words) == 0 {
		return in.fail(errorResult(UnknownCommand, "", ""))
	}

	name := strings.ToLower(words[0])
	spec, ok := in.commands.Lookup(name)
	if !ok {
		in.record(&logger.UnknownCommand{Command: words})
		return in.fail(errorResult(UnknownCommand, words[0], ""))
	}

	var out string
	err := in.guard("command "+name, func() (err error) {
		out, err = spec.Command.Run(in.virtOS, words[1:])
		return
	})
	if err != nil {
		return in.fail(errorResult(CommandFault, name, err.Error()))
	}
	return textResult(out)
}

// runFilter applies a filter, done is set if an interactive filter consumed
// the line.
func (in *Interpreter) runFilter(text, input string) (result Result, done bool) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return in.fail(errorResult(UnknownFilter, "", "")), false
	}

	keyword := strings.ToLower(words[0])
	spec, ok := in.filters.Lookup(keyword)
	if !ok {
		return in.fail(errorResult(UnknownFilter, words[0], "")), false
	}

	var out string
	err := in.guard("filter "+keyword, func() (err error) {
		out, err = spec.Filter.Apply(in.virtOS, input, words[1:])
		return
	})
	if err != nil {
		return in.fail(errorResult(FilterFault, keyword, err.Error())), false
	}
	if spec.Interactive {
		return textResult(""), true
	}
	return textResult(out), false
}

// guard runs fn, converting a panic into an error.
func (in *Interpreter) guard(context string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			in.record(&logger.Panic{
				Context:    context,
				Stacktrace: string(debug.Stack()),
			})
			err = fmt.Errorf("%v", r)
		}
	}()

	return fn()
}

func (in *Interpreter) fail(result Result) Result {
	if result.Err != nil && result.Err.Kind != UnknownCommand {
		in.record(&logger.StageFailure{
			Kind:    result.Err.Kind.String(),
			Subject: result.Err.Subject,
			Detail:  result.Err.Detail,
		})
	}
	return result
}

func (in *Interpreter) recordUnreachable(filter Stage, dropped []Stage) {
	if len(dropped) == 0 {
		return
	}

	var texts []string
	for _, stage := range dropped {
		texts = append(texts, stage.String())
	}
	in.record(&logger.UnreachableStages{
		Filter:  strings.ToLower(strings.Fields(filter.Text)[0]),
		Dropped: texts,
	})
}

func (in *Interpreter) record(event logger.LogType) {
	// Logging failures must not change what the user sees.
	_ = in.recorder.Record(event)
}
