package core

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephlewis42/pipesh/core/config"
	"github.com/josephlewis42/pipesh/core/logger"
	"github.com/josephlewis42/pipesh/core/vos/vostest"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, stdin string) (*Session, *vostest.TestOS) {
	t.Helper()

	testOS := vostest.NewDeterministicOS(stdin)
	return NewSession(config.Default(), testOS.SessionOS, nil, nil), testOS
}

func numbered(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	return sb.String()
}

func TestSession_unknownCommand(t *testing.T) {
	session, _ := newTestSession(t, "")

	var out string
	assert.NotPanics(t, func() {
		out = session.ExecuteLine("zzqx")
	})
	assert.Contains(t, out, "zzqx")
	assert.Equal(t, "Error! Unknown command: zzqx", out)
}

func TestSession_pagerEndsLine(t *testing.T) {
	session, testOS := newTestSession(t, "q\n")
	require.Nil(t, testOS.WriteFiles(map[string]string{"a.txt": "", "b.txt": ""}))

	assert.Equal(t, "", session.ExecuteLine("ls | more"))
	assert.Equal(t, "a.txt\nb.txt\n", testOS.Out.String())

	assert.Equal(t, "", session.ExecuteLine("ls | less | grep a > out.txt"))
	_, err := testOS.Stat("out.txt")
	assert.Error(t, err)
}

func TestSession_pipelines(t *testing.T) {
	cases := map[string]struct {
		line string
		want string
	}{
		"grep":             {line: "cat fruit.txt | grep APPLE", want: "apple\nApple pie\napple\n"},
		"grep then uniq":   {line: "cat fruit.txt | grep apple | uniq", want: "apple\nApple pie\n"},
		"uniq":             {line: "cat fruit.txt | uniq", want: "apple\nbanana\nApple pie\ncherry\n"},
		"ls reverse":       {line: "ls -r", want: "fruit.txt\ndocs\n"},
		"unknown filter":   {line: "ls | sort", want: "Error! Unknown filter: sort"},
		"usage":            {line: "cd", want: "Usage: cd <directory>"},
		"grep usage":       {line: "ls | grep", want: "Usage: grep <pattern>"},
		"grep error text":  {line: "zzqx | grep unknown", want: "Error! Unknown command: zzqx\n"},
		"case insensitive": {line: "PWD", want: "/home/user"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			session, testOS := newTestSession(t, "")
			require.Nil(t, testOS.WriteFiles(map[string]string{
				"fruit.txt": "apple\nbanana\nApple pie\napple\ncherry\n",
			}))
			require.Nil(t, testOS.Mkdir("docs", 0755))

			assert.Equal(t, tc.want, session.ExecuteLine(tc.line))
		})
	}
}

func TestSession_redirectRoundTrip(t *testing.T) {
	session, testOS := newTestSession(t, "")
	require.Nil(t, testOS.WriteFiles(map[string]string{"a.txt": "", "b.txt": ""}))

	listing := session.ExecuteLine("ls")
	assert.Equal(t, "", session.ExecuteLine("ls > listing.txt"))
	assert.Equal(t, strings.TrimSpace(listing), session.ExecuteLine("cat listing.txt"))

	assert.Equal(t, "", session.ExecuteLine("pwd >> log.txt"))
	assert.Equal(t, "", session.ExecuteLine("pwd >> log.txt"))
	assert.Equal(t, "/home/user\n/home/user", session.ExecuteLine("cat log.txt"))

	assert.Equal(t, "", session.ExecuteLine("zzqx > err.txt"))
	assert.Equal(t, "Error! Unknown command: zzqx", session.ExecuteLine("cat err.txt"))
}

func TestSession_cdScopesPaths(t *testing.T) {
	session, _ := newTestSession(t, "")

	assert.Equal(t, "Directory created: /home/user/projects", session.ExecuteLine("mkdir projects"))
	assert.Equal(t, "Directory changed: projects", session.ExecuteLine("cd projects"))
	assert.Equal(t, "File created: /home/user/projects/notes.txt", session.ExecuteLine("touch notes.txt"))
	assert.Equal(t, "notes.txt\n", session.ExecuteLine("ls"))
	assert.Equal(t, "Directory changed: ..", session.ExecuteLine("cd .."))
	assert.Equal(t, "projects\n", session.ExecuteLine("ls"))
}

func TestSession_events(t *testing.T) {
	var buf bytes.Buffer
	testOS := vostest.NewDeterministicOS("")
	sessionLogger := logger.NewJsonLinesLogRecorder(&buf).NewSession()
	session := NewSession(config.Default(), testOS.SessionOS, sessionLogger, &logger.SessionStart{Source: "exec"})

	session.ExecuteLine("zzqx")
	session.ExecuteLine("ls | bogus")

	var report logger.Report
	require.Nil(t, logger.ReadJSONLinesLog(&buf, report.Update))
	assert.Equal(t, 1, report.Session.Count)
	assert.Equal(t, 5, report.LogEntries)
}

func TestSession_Prompt(t *testing.T) {
	cases := map[string]struct {
		prompt string
		want   string
	}{
		"default":    {prompt: "", want: "/home/user$ "},
		"configured": {prompt: `[\w]\$ `, want: "[/home/user]$ "},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := config.Default()
			cfg.Prompt = tc.prompt
			session := NewSession(cfg, vostest.NewDeterministicOS("").SessionOS, nil, nil)
			assert.Equal(t, tc.want, session.Prompt())
		})
	}
}

func TestSession_Run(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	stdin := strings.Join([]string{
		"pwd",
		"",
		"mkdir docs",
		"cd docs",
		"cat ../numbers.txt | more",
		"q",
		"zzqx",
		"exit",
		"pwd",
	}, "\n") + "\n"

	session, testOS := newTestSession(t, stdin)
	require.Nil(t, testOS.WriteFiles(map[string]string{"numbers.txt": numbered(12)}))

	assert.Nil(t, session.Run())
	g.Assert(t, "transcript", testOS.Out.Bytes())
}

func TestSession_RunEndOfInput(t *testing.T) {
	session, testOS := newTestSession(t, "pwd")

	assert.Nil(t, session.Run())
	assert.Equal(t, "/home/user$ /home/user\n/home/user$ ", testOS.Out.String())
}
