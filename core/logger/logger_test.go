package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(buf *bytes.Buffer) *Logger {
	l := NewJsonLinesLogRecorder(buf)
	l.Now = func() time.Time {
		return time.Date(2021, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	return l
}

func TestJsonLinesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	session := fixedLogger(&buf).NewSession()

	events := []LogType{
		&SessionStart{Source: "exec", StartDir: "/home/user"},
		&RunLine{Line: "ls | more", Stages: 2},
		&UnknownCommand{Command: []string{"zzqx"}},
		&StageFailure{Kind: "unknown_filter", Subject: "bogus"},
		&UnreachableStages{Filter: "more", Dropped: []string{"grep x"}},
		&Panic{Context: "command cat"},
	}
	for _, e := range events {
		assert.Nil(t, session.Record(e))
	}
	assert.Equal(t, len(events), strings.Count(buf.String(), "\n"))

	var got []LogType
	err := ReadJSONLinesLog(&buf, func(le *LogEntry) {
		assert.Equal(t, session.SessionID(), le.SessionID)
		assert.Equal(t, int64(1627819200000000), le.TimestampMicros)
		got = append(got, le.GetLogType())
	})
	assert.Nil(t, err)
	assert.Equal(t, events, got)
}

func TestReadJSONLinesLog_invalid(t *testing.T) {
	err := ReadJSONLinesLog(strings.NewReader(`{"bogus_field": 1}`), func(*LogEntry) {})
	assert.Error(t, err)
}

func TestSessionless(t *testing.T) {
	var buf bytes.Buffer
	fixedLogger(&buf).Sessionless().Record(&RunLine{Line: "pwd", Stages: 1})
	assert.NotContains(t, buf.String(), "session_id")
}

func TestReport(t *testing.T) {
	var report Report
	var bugs = NewBugReport()
	var interactions InteractionReport

	entries := []*LogEntry{
		{SessionID: "1", SessionStart: &SessionStart{Source: "ssh", User: "joe"}},
		{SessionID: "1", LoginAttempt: &LoginAttempt{Username: "joe", Accepted: true}},
		{SessionID: "1", RunLine: &RunLine{Line: "ls -a | grep go", Stages: 2}},
		{SessionID: "1", RunLine: &RunLine{Line: "zzqx", Stages: 1}},
		{SessionID: "1", UnknownCommand: &UnknownCommand{Command: []string{"zzqx"}}},
		{SessionID: "2", StageFailure: &StageFailure{Kind: "filter_fault", Subject: "grep", Detail: "bad"}},
		{SessionID: "2", Panic: &Panic{Context: "filter grep"}},
		{},
	}
	for _, le := range entries {
		report.Update(le)
		bugs.Update(le)
		interactions.Update(le)
	}

	assert.Equal(t, 8, report.LogEntries)
	assert.Equal(t, 1, report.Session.Count)
	assert.Equal(t, []string{"filter grep"}, report.Panic.Contexts)
	assert.Len(t, bugs.Panics, 1)

	out, err := json.Marshal(&report)
	assert.Nil(t, err)
	assert.Contains(t, string(out), `"command_names":{"ls":1,"zzqx":1}`)
	assert.Contains(t, string(out), `"unknown_log_entries":{"\u003cnil\u003e":1}`)

	out, err = json.Marshal(bugs)
	assert.Nil(t, err)
	assert.Contains(t, string(out), `"unknown_commands":[{"count":1,"event":{"command":"zzqx"}}]`)

	out, err = json.Marshal(&interactions)
	assert.Nil(t, err)
	assert.Contains(t, string(out), `"lines":["ls -a | grep go","zzqx"]`)
	assert.Contains(t, string(out), `"failures":["unknown command \"zzqx\""]`)
}

func TestPathCounter(t *testing.T) {
	ctr := NewPathCounter("a", "b")
	ctr.Increment("x", "y")
	ctr.Increment("x", "y")
	ctr.Increment("x", "z")

	out, err := json.Marshal(ctr)
	assert.Nil(t, err)
	assert.JSONEq(t, `[
		{"count": 2, "event": {"a": "x", "b": "y"}},
		{"count": 1, "event": {"a": "x", "b": "z"}}
	]`, string(out))

	assert.Panics(t, func() { ctr.Increment("only one") })
}
