package vos

import "time"

// PTY describes the terminal a session is attached to.
type PTY struct {
	Width  int
	Height int
	Term   string
	IsPTY  bool
}

// TimeSource returns the current time.
type TimeSource func() time.Time

// VOS provides a virtual OS interface to commands and filters.
//
// Relative paths passed to the VFS methods are resolved against the working
// directory returned by Getwd.
type VOS interface {
	VFS
	VIO
	LineReader

	// Getwd returns the absolute working directory.
	Getwd() string
	// Chdir changes the working directory, dir may be relative.
	Chdir(dir string) error
	// Abs resolves name against the working directory and cleans it.
	Abs(name string) string

	GetPTY() PTY
	Now() time.Time
}
