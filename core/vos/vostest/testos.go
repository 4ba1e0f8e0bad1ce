package vostest

import (
	"bytes"
	"strings"
	"time"

	"github.com/josephlewis42/pipesh/core/vos"
	"github.com/spf13/afero"
)

// HomeDir is the working directory deterministic sessions start in.
const HomeDir = "/home/user"

// FixedTime is Go's reference timestamp with a different value in each
// position.
func FixedTime() time.Time {
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

// TestOS is a deterministic in-memory session with captured output.
type TestOS struct {
	*vos.SessionOS

	// Fs is the backing filesystem using absolute paths.
	Fs afero.Fs
	// Out captures stdout and stderr.
	Out *bytes.Buffer
}

// NewDeterministicOS creates a session in HomeDir on an empty in-memory
// filesystem. stdin scripts the interactive input.
func NewDeterministicOS(stdin string) *TestOS {
	memFs := afero.NewMemMapFs()
	if err := memFs.MkdirAll(HomeDir, 0755); err != nil {
		panic(err)
	}

	out := &bytes.Buffer{}
	session, err := vos.NewSessionOS(memFs, HomeDir, &vos.SessionAttr{
		Files:      vos.NewVIOAdapter(strings.NewReader(stdin), out, out),
		TimeSource: FixedTime,
	})
	if err != nil {
		panic(err)
	}

	return &TestOS{
		SessionOS: session,
		Fs:        memFs,
		Out:       out,
	}
}

// WriteFiles creates each file with the given contents, parents are made as
// needed. Relative names are resolved against the working directory.
func (t *TestOS) WriteFiles(files map[string]string) error {
	for name, contents := range files {
		name = t.Abs(name)
		if err := t.Fs.MkdirAll(parentDir(name), 0755); err != nil {
			return err
		}
		if err := afero.WriteFile(t.Fs, name, []byte(contents), 0644); err != nil {
			return err
		}
	}
	return nil
}

func parentDir(name string) string {
	idx := strings.LastIndex(name, "/")
	if idx <= 0 {
		return "/"
	}
	return name[:idx]
}
