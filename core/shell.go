package core

import (
	"errors"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/pipesh/core/vos"
)

// Shell is an interactive line editor in front of a Session.
type Shell struct {
	Session  *Session
	Readline *readline.Instance
}

// NewShell attaches a line editor to the session's streams. Interactive
// input, including pager prompts, is read through it.
func NewShell(session *Session) (*Shell, error) {
	virtOS := session.VirtualOS

	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(virtOS.Stdin()),
		Stdout: virtOS.Stdout(),
		Stderr: virtOS.Stderr(),
		FuncGetWidth: func() int {
			return virtOS.GetPTY().Width
		},

		FuncIsTerminal: func() bool {
			return virtOS.GetPTY().IsPTY
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	virtOS.Input = &readlineInput{rl: rl}

	return &Shell{
		Session:  session,
		Readline: rl,
	}, nil
}

// Run the read loop until exit or end of input.
func (s *Shell) Run() error {
	return s.Session.Run()
}

func (s *Shell) Close() error {
	return s.Readline.Close()
}

// readlineInput adapts a readline instance to vos.LineReader.
type readlineInput struct {
	rl *readline.Instance
}

var _ vos.LineReader = (*readlineInput)(nil)

func (r *readlineInput) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", vos.ErrInterrupt
	}
	return line, err
}
