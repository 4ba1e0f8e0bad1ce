// Package decor colors user facing messages.
package decor

import (
	"github.com/fatih/color"
	"github.com/josephlewis42/pipesh/core/config"
	"github.com/josephlewis42/pipesh/core/vos"
)

// Printer applies a fixed palette to text. Each Printer owns its colors so
// sessions with different terminals don't share state.
type Printer struct {
	red    *color.Color
	yellow *color.Color
	prompt *color.Color
}

// NewPrinter creates a Printer for the color mode, one of always, auto or
// never. Auto colors only if pty is a terminal.
func NewPrinter(mode string, pty vos.PTY) *Printer {
	var enabled bool
	switch mode {
	case config.ColorAlways:
		enabled = true
	case config.ColorNever:
		enabled = false
	default:
		enabled = pty.IsPTY
	}

	p := &Printer{
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		prompt: color.New(color.BgWhite, color.FgBlack),
	}
	for _, c := range []*color.Color{p.red, p.yellow, p.prompt} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Plain returns a Printer that never colors.
func Plain() *Printer {
	return NewPrinter(config.ColorNever, vos.PTY{})
}

// Red formats the arguments in red.
func (p *Printer) Red(a ...interface{}) string {
	return p.red.Sprint(a...)
}

// Yellow formats the arguments in yellow.
func (p *Printer) Yellow(a ...interface{}) string {
	return p.yellow.Sprint(a...)
}

// Prompt formats an interactive prompt in reverse video.
func (p *Printer) Prompt(prompt string) string {
	return p.prompt.Sprint(prompt)
}
