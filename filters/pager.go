package filters

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/josephlewis42/pipesh/core/decor"
	"github.com/josephlewis42/pipesh/core/vos"
)

const (
	morePrompt = "-- More -- (Press Enter to continue, 'q' to quit): "
	lessPrompt = ":"
)

type pagerState int

const (
	stateDisplaying pagerState = iota
	stateAwaitingInput
	stateDone
)

// Pager shows text a page at a time, waiting for the user between pages.
// Arguments are ignored. The end of interactive input or an interrupt
// quits.
type Pager struct {
	pageSize int
	printer  *decor.Printer
}

// NewPager creates a pager, non-positive page sizes use DefaultPageSize.
func NewPager(pageSize int, printer *decor.Printer) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if printer == nil {
		printer = decor.Plain()
	}
	return &Pager{pageSize: pageSize, printer: printer}
}

// More shows a page then asks to continue, q quits.
func (p *Pager) More(virtOS vos.VOS, input string, _ []string) (string, error) {
	lines := splitLines(input)
	w := virtOS.Stdout()

	next := 0
	for state := stateDisplaying; state != stateDone; {
		switch state {
		case stateDisplaying:
			end := next + p.pageSize
			if end > len(lines) {
				end = len(lines)
			}
			if err := writeLines(w, lines[next:end]); err != nil {
				return "", err
			}
			next = end

			state = stateAwaitingInput
			if next >= len(lines) {
				state = stateDone
			}

		case stateAwaitingInput:
			answer, quit, err := p.readLine(virtOS, morePrompt)
			switch {
			case err != nil:
				return "", err
			case quit, strings.EqualFold(strings.TrimSpace(answer), "q"):
				state = stateDone
			default:
				state = stateDisplaying
			}
		}
	}

	return "", nil
}

// Less shows the first page then reads single letter commands: s shows the
// next line, w steps back one line and shows the two lines before the
// pointer, q quits. Other input is ignored.
func (p *Pager) Less(virtOS vos.VOS, input string, _ []string) (string, error) {
	lines := splitLines(input)
	w := virtOS.Stdout()

	pointer := p.pageSize
	if pointer > len(lines) {
		pointer = len(lines)
	}
	if err := writeLines(w, lines[:pointer]); err != nil {
		return "", err
	}

	for pointer < len(lines) {
		answer, quit, err := p.readLine(virtOS, lessPrompt)
		if err != nil {
			return "", err
		}
		if quit {
			break
		}

		var command byte
		if answer = strings.TrimSpace(answer); answer != "" {
			command = answer[0]
		}

		switch command {
		case 'q':
			return "", nil
		case 'w':
			if pointer > 1 {
				pointer--
			}
			start := pointer - 2
			if start < 0 {
				start = 0
			}
			err = writeLines(w, lines[start:pointer])
		case 's':
			err = writeLines(w, lines[pointer:pointer+1])
			pointer++
		}
		if err != nil {
			return "", err
		}
	}

	return "", nil
}

// readLine prompts for a line, quit is set if input ended.
func (p *Pager) readLine(virtOS vos.VOS, prompt string) (line string, quit bool, err error) {
	line, err = virtOS.ReadLine(p.printer.Prompt(prompt))
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, vos.ErrInterrupt):
		return "", true, nil
	case err != nil:
		return "", false, err
	default:
		return line, false, nil
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
