// Package filters holds the text transformations that can follow a pipe.
package filters

import (
	"strings"

	"github.com/josephlewis42/pipesh/core/decor"
	"github.com/josephlewis42/pipesh/core/pipeline"
)

// DefaultPageSize is the number of lines a pager shows at once.
const DefaultPageSize = 10

// Options configures the filters.
type Options struct {
	// PageSize is the number of lines per page, DefaultPageSize if unset.
	PageSize int
	// Printer decorates pager prompts, defaults to no color.
	Printer *decor.Printer
}

// NewRegistry builds the filter registry.
func NewRegistry(opts Options) *pipeline.FilterRegistry {
	pager := NewPager(opts.PageSize, opts.Printer)

	return pipeline.NewFilterRegistry(
		pipeline.FilterSpec{
			Name:   "grep",
			Use:    "grep <pattern>",
			Short:  "Keep lines containing the pattern, ignoring case.",
			Filter: pipeline.FilterFunc(Grep),
		},
		pipeline.FilterSpec{
			Name:   "uniq",
			Use:    "uniq",
			Short:  "Drop repeated lines, keeping the first occurrence.",
			Filter: pipeline.FilterFunc(Uniq),
		},
		pipeline.FilterSpec{
			Name:        "more",
			Use:         "more",
			Short:       "Page through the output, Enter shows the next page and q quits.",
			Filter:      pipeline.FilterFunc(pager.More),
			Interactive: true,
		},
		pipeline.FilterSpec{
			Name:        "less",
			Use:         "less",
			Short:       "Page through the output, s shows the next line, w steps back and q quits.",
			Filter:      pipeline.FilterFunc(pager.Less),
			Interactive: true,
		},
	)
}

// splitLines splits input on newlines ignoring one trailing newline. Empty
// input has no lines.
func splitLines(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}
