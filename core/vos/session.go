package vos

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"
)

var (
	// ErrNotDirectory is returned by Chdir when the target isn't a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrInterrupt is returned by a LineReader when the user cancels the
	// line being read.
	ErrInterrupt = errors.New("interrupt")
)

// SessionOS is the virtual OS seen by a single interpreter session.
//
// It owns the session's working directory, nothing else may change it.
type SessionOS struct {
	// VFS resolves relative paths against Dir.
	VFS

	VIO

	// Input supplies interactive lines, it defaults to a StreamLineReader
	// over the session's VIO.
	Input LineReader

	// base is the absolute path filesystem shared by the session.
	base VFS
	// dir is the absolute working directory.
	dir string
	// Connected terminal information, updated when the window changes.
	ptyMu sync.Mutex
	pty   PTY

	timeSource TimeSource
}

var _ VOS = (*SessionOS)(nil)

// SessionAttr holds optional session attributes.
type SessionAttr struct {
	// Files specifies the session's standard streams, nil means /dev/null.
	Files VIO
	// Input overrides the interactive line source.
	Input LineReader
	PTY   PTY
	// TimeSource defaults to time.Now.
	TimeSource TimeSource
}

// NewSessionOS creates a session rooted at the absolute directory dir of
// base.
func NewSessionOS(base VFS, dir string, attr *SessionAttr) (*SessionOS, error) {
	if attr == nil {
		attr = &SessionAttr{}
	}

	out := &SessionOS{
		base:       base,
		pty:        attr.PTY,
		timeSource: attr.TimeSource,
		Input:      attr.Input,
	}
	if out.timeSource == nil {
		out.timeSource = time.Now
	}

	out.VIO = attr.Files
	if out.VIO == nil {
		out.VIO = NewNullIO()
	}
	if out.Input == nil {
		out.Input = NewStreamLineReader(out.VIO)
	}

	out.VFS = NewRelativeFs(base, out.Getwd)

	if !filepath.IsAbs(dir) {
		return nil, fmt.Errorf("start directory %q: must be absolute", dir)
	}
	if err := out.Chdir(dir); err != nil {
		return nil, err
	}

	return out, nil
}

// Getwd implements VOS.Getwd.
func (s *SessionOS) Getwd() string {
	return s.dir
}

// Abs implements VOS.Abs.
func (s *SessionOS) Abs(name string) string {
	return resolvePath(s.dir, name)
}

// Chdir implements VOS.Chdir.
func (s *SessionOS) Chdir(dir string) error {
	dir = resolvePath(s.dir, dir)

	stat, err := s.base.Stat(dir)
	switch {
	case err != nil:
		return fmt.Errorf("%s: %w", dir, err)
	case !stat.IsDir():
		return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	default:
		s.dir = dir
		return nil
	}
}

// ReadLine implements VOS.ReadLine.
func (s *SessionOS) ReadLine(prompt string) (string, error) {
	return s.Input.ReadLine(prompt)
}

func (s *SessionOS) SetPTY(pty PTY) {
	s.ptyMu.Lock()
	defer s.ptyMu.Unlock()
	s.pty = pty
}

func (s *SessionOS) GetPTY() PTY {
	s.ptyMu.Lock()
	defer s.ptyMu.Unlock()
	return s.pty
}

func (s *SessionOS) Now() time.Time {
	return s.timeSource()
}
