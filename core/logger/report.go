package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

func NewBugReport() *BugReport {
	return &BugReport{
		StageFailures:   NewPathCounter("kind", "subject", "detail"),
		UnknownCommands: NewPathCounter("command"),
	}
}

// BugReport pulls events that are likely bugs in commands or filters.
type BugReport struct {
	LogEntries int `json:"log_entries"`

	StageFailures   *PathCounter `json:"stage_failures"`
	UnknownCommands *PathCounter `json:"unknown_commands"`
	Panics          []*Panic     `json:"panics"`
}

func (r *BugReport) Update(le *LogEntry) {
	r.LogEntries++

	switch event := le.GetLogType().(type) {
	case *Panic:
		r.Panics = append(r.Panics, event)
	case *UnknownCommand:
		if len(event.Command) > 0 {
			r.UnknownCommands.Increment(event.Command[0])
		}
	case *StageFailure:
		r.StageFailures.Increment(event.Kind, event.Subject, event.Detail)
	}
}

// InteractionReport groups events by session.
type InteractionReport struct {
	// Map of sessionID -> interactions
	interactions map[string]*InteractiveSession
}

type InteractiveSession struct {
	Source     string `json:"source"`
	User       string `json:"user,omitempty"`
	RemoteAddr string `json:"remote_addr,omitempty"`
	StartDir   string `json:"start_dir"`
	IsPty      bool   `json:"is_pty"`
	LogEntries int    `json:"log_entries"`

	Lines    []string `json:"lines"`
	Failures []string `json:"failures"`
}

func (i *InteractiveSession) Update(le *LogEntry) {
	i.LogEntries++

	switch event := le.GetLogType().(type) {
	case *SessionStart:
		i.Source = event.Source
		i.User = event.User
		i.RemoteAddr = event.RemoteAddr
		i.StartDir = event.StartDir
		i.IsPty = event.IsPty
	case *RunLine:
		i.Lines = append(i.Lines, event.Line)
	case *UnknownCommand:
		i.Failures = append(i.Failures, fmt.Sprintf("unknown command %q", strings.Join(event.Command, " ")))
	case *StageFailure:
		i.Failures = append(i.Failures, fmt.Sprintf("%s %q", event.Kind, event.Subject))
	}
}

func (i *InteractionReport) init() {
	if i.interactions == nil {
		i.interactions = make(map[string]*InteractiveSession)
	}
}

// MarshalJSON implements custom JSON marshaler.
func (i *InteractionReport) MarshalJSON() ([]byte, error) {
	i.init()

	return json.Marshal(i.interactions)
}

func (i *InteractionReport) Update(le *LogEntry) {
	i.init()

	sessionID := le.SessionID
	if sessionID == "" {
		return
	}
	report, ok := i.interactions[sessionID]
	if !ok {
		report = &InteractiveSession{}
		i.interactions[sessionID] = report
	}

	report.Update(le)
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	Session           SessionReport           `json:"session_report"`
	LoginAttempt      LoginAttemptReport      `json:"login_attempt_report"`
	RunLine           RunLineReport           `json:"run_line_report"`
	UnknownCommand    UnknownCommandReport    `json:"unknown_command_report"`
	StageFailure      StageFailureReport      `json:"stage_failure_report"`
	UnreachableStages UnreachableStagesReport `json:"unreachable_stages_report"`
	Panic             PanicReport             `json:"panic_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	switch event := le.GetLogType().(type) {
	case *SessionStart:
		r.Session.update(event)
	case *LoginAttempt:
		r.LoginAttempt.update(event)
	case *RunLine:
		r.RunLine.update(event)
	case *UnknownCommand:
		r.UnknownCommand.update(event)
	case *StageFailure:
		r.StageFailure.update(event)
	case *UnreachableStages:
		r.UnreachableStages.update(event)
	case *Panic:
		r.Panic.update(event)
	default:
		r.InvalidEntries.Increment(fmt.Sprintf("%T", event))
	}
}

type SessionReport struct {
	Count   int        `json:"count"`
	Sources StrCounter `json:"sources"`
}

func (r *SessionReport) update(s *SessionStart) {
	r.Count++
	r.Sources.Increment(s.Source)
}

type LoginAttemptReport struct {
	// List of usernames and their counts.
	Usernames StrCounter `json:"usernames"`
	// Accepted and rejected counts.
	Results StrCounter `json:"results"`
}

func (r *LoginAttemptReport) update(la *LoginAttempt) {
	r.Usernames.Increment(la.Username)
	if la.Accepted {
		r.Results.Increment("accepted")
	} else {
		r.Results.Increment("rejected")
	}
}

type RunLineReport struct {
	// Name of the first word of each line.
	CommandNames StrCounter `json:"command_names"`
	// Number of stages per line.
	StageCounts StrCounter `json:"stage_counts"`
}

func (r *RunLineReport) update(rl *RunLine) {
	if fields := strings.Fields(rl.Line); len(fields) > 0 {
		r.CommandNames.Increment(fields[0])
	}
	r.StageCounts.Increment(fmt.Sprintf("%d", rl.Stages))
}

type UnknownCommandReport struct {
	CommandNames StrCounter `json:"command_names"`
}

func (r *UnknownCommandReport) update(logEntry *UnknownCommand) {
	if len(logEntry.Command) > 0 {
		r.CommandNames.Increment(logEntry.Command[0])
	}
}

type StageFailureReport struct {
	Kinds    StrCounter `json:"kinds"`
	Subjects StrCounter `json:"subjects"`
}

func (r *StageFailureReport) update(sf *StageFailure) {
	r.Kinds.Increment(sf.Kind)
	r.Subjects.Increment(sf.Subject)
}

type UnreachableStagesReport struct {
	Filters StrCounter `json:"filters"`
}

func (r *UnreachableStagesReport) update(us *UnreachableStages) {
	r.Filters.Increment(us.Filter)
}

type PanicReport struct {
	Contexts []string `json:"contexts"`
}

func (r *PanicReport) update(p *Panic) {
	r.Contexts = append(r.Contexts, p.Context)
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// MarshalJSON implements custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of strings seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// MarshalJSON implements custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	var out []Count
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
