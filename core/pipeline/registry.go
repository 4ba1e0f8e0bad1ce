package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/josephlewis42/pipesh/core/vos"
)

// Command produces the head output of a line.
type Command interface {
	Run(virtOS vos.VOS, args []string) (string, error)
}

// CommandFunc adapts a function to a Command.
type CommandFunc func(virtOS vos.VOS, args []string) (string, error)

var _ Command = (CommandFunc)(nil)

// Run implements Command.
func (f CommandFunc) Run(virtOS vos.VOS, args []string) (string, error) {
	return f(virtOS, args)
}

// Filter transforms the output of the previous stage.
type Filter interface {
	Apply(virtOS vos.VOS, input string, args []string) (string, error)
}

// FilterFunc adapts a function to a Filter.
type FilterFunc func(virtOS vos.VOS, input string, args []string) (string, error)

var _ Filter = (FilterFunc)(nil)

// Apply implements Filter.
func (f FilterFunc) Apply(virtOS vos.VOS, input string, args []string) (string, error) {
	return f(virtOS, input, args)
}

// CommandSpec describes a registered command.
type CommandSpec struct {
	Name string
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description.
	Short   string
	Command Command
}

// FilterSpec describes a registered filter.
type FilterSpec struct {
	Name  string
	Use   string
	Short string

	Filter Filter
	// Interactive filters talk to the user directly and end the line.
	Interactive bool
}

// CommandRegistry maps lower-case names to commands. It can't be modified
// after construction.
type CommandRegistry struct {
	specs map[string]CommandSpec
}

// NewCommandRegistry builds a registry, it panics on duplicate or empty
// names.
func NewCommandRegistry(specs ...CommandSpec) *CommandRegistry {
	reg := &CommandRegistry{specs: make(map[string]CommandSpec)}
	for _, spec := range specs {
		key := registryKey("command", spec.Name, reg.has)
		spec.Name = key
		reg.specs[key] = spec
	}
	return reg
}

func (r *CommandRegistry) has(name string) bool {
	_, ok := r.specs[name]
	return ok
}

// Lookup finds a command by case-insensitive name.
func (r *CommandRegistry) Lookup(name string) (CommandSpec, bool) {
	spec, ok := r.specs[strings.ToLower(name)]
	return spec, ok
}

// List returns the commands sorted by name.
func (r *CommandRegistry) List() []CommandSpec {
	var out []CommandSpec
	for _, spec := range r.specs {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// FilterRegistry maps lower-case keywords to filters. It can't be modified
// after construction.
type FilterRegistry struct {
	specs map[string]FilterSpec
}

// NewFilterRegistry builds a registry, it panics on duplicate or empty
// names.
func NewFilterRegistry(specs ...FilterSpec) *FilterRegistry {
	reg := &FilterRegistry{specs: make(map[string]FilterSpec)}
	for _, spec := range specs {
		key := registryKey("filter", spec.Name, reg.has)
		spec.Name = key
		reg.specs[key] = spec
	}
	return reg
}

func (r *FilterRegistry) has(name string) bool {
	_, ok := r.specs[name]
	return ok
}

// Lookup finds a filter by case-insensitive keyword.
func (r *FilterRegistry) Lookup(name string) (FilterSpec, bool) {
	spec, ok := r.specs[strings.ToLower(name)]
	return spec, ok
}

// List returns the filters sorted by name.
func (r *FilterRegistry) List() []FilterSpec {
	var out []FilterSpec
	for _, spec := range r.specs {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

func registryKey(kind, name string, exists func(string) bool) string {
	key := strings.ToLower(strings.TrimSpace(name))
	switch {
	case key == "":
		panic(fmt.Sprintf("%s registered without a name", kind))
	case strings.ContainsAny(key, " \t|>"):
		panic(fmt.Sprintf("invalid %s name %q", kind, name))
	case exists(key):
		panic(fmt.Sprintf("%s %q registered twice", kind, key))
	}
	return key
}
