package logger

// LogEntry is a single event in the log. Exactly one of the event fields is
// set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart      *SessionStart      `json:"session_start,omitempty"`
	LoginAttempt      *LoginAttempt      `json:"login_attempt,omitempty"`
	RunLine           *RunLine           `json:"run_line,omitempty"`
	UnknownCommand    *UnknownCommand    `json:"unknown_command,omitempty"`
	StageFailure      *StageFailure      `json:"stage_failure,omitempty"`
	UnreachableStages *UnreachableStages `json:"unreachable_stages,omitempty"`
	Panic             *Panic             `json:"panic,omitempty"`
}

// LogType is implemented by every event that can be stored in a LogEntry.
type LogType interface {
	apply(le *LogEntry)
}

// GetLogType returns the event held by the entry or nil if it has none.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le.SessionStart != nil:
		return le.SessionStart
	case le.LoginAttempt != nil:
		return le.LoginAttempt
	case le.RunLine != nil:
		return le.RunLine
	case le.UnknownCommand != nil:
		return le.UnknownCommand
	case le.StageFailure != nil:
		return le.StageFailure
	case le.UnreachableStages != nil:
		return le.UnreachableStages
	case le.Panic != nil:
		return le.Panic
	default:
		return nil
	}
}

// SessionStart is logged when a shell session begins.
type SessionStart struct {
	// Source of the session, one of "shell", "exec" or "ssh".
	Source     string `json:"source"`
	User       string `json:"user,omitempty"`
	RemoteAddr string `json:"remote_addr,omitempty"`
	StartDir   string `json:"start_dir"`
	IsPty      bool   `json:"is_pty"`
}

func (e *SessionStart) apply(le *LogEntry) { le.SessionStart = e }

// LoginAttempt is logged for each SSH password check.
type LoginAttempt struct {
	Username   string `json:"username"`
	RemoteAddr string `json:"remote_addr,omitempty"`
	Accepted   bool   `json:"accepted"`
}

func (e *LoginAttempt) apply(le *LogEntry) { le.LoginAttempt = e }

// RunLine is logged for every non-blank line the interpreter executes.
type RunLine struct {
	Line   string `json:"line"`
	Stages int    `json:"stages"`
}

func (e *RunLine) apply(le *LogEntry) { le.RunLine = e }

// UnknownCommand is logged when the first stage names no registered command.
type UnknownCommand struct {
	Command []string `json:"command"`
}

func (e *UnknownCommand) apply(le *LogEntry) { le.UnknownCommand = e }

// StageFailure is logged when a stage produces an error result.
type StageFailure struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Detail  string `json:"detail,omitempty"`
}

func (e *StageFailure) apply(le *LogEntry) { le.StageFailure = e }

// UnreachableStages is logged when an interactive filter ends a line early.
type UnreachableStages struct {
	Filter  string   `json:"filter"`
	Dropped []string `json:"dropped"`
}

func (e *UnreachableStages) apply(le *LogEntry) { le.UnreachableStages = e }

// Panic is logged when a command or filter panics.
type Panic struct {
	Context    string `json:"context"`
	Stacktrace string `json:"stacktrace,omitempty"`
}

func (e *Panic) apply(le *LogEntry) { le.Panic = e }
