package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// redirect writes the carried value to the file named by the stage.
func (in *Interpreter) redirect(stage Stage, carried string) Result {
	name := strings.TrimSpace(stage.Text)
	if name == "" {
		return in.fail(errorResult(WriteFailure, "", "missing file name"))
	}

	if info, err := in.virtOS.Stat(name); err == nil && info.IsDir() {
		return in.fail(errorResult(WriteFailure, name, "is a directory"))
	}

	value := strings.TrimSpace(carried)
	var err error
	if stage.Op == OpAppend {
		err = appendFile(in.virtOS, name, value)
	} else {
		err = afero.WriteFile(in.virtOS, name, []byte(value), 0644)
	}
	if err != nil {
		return in.fail(errorResult(WriteFailure, name, err.Error()))
	}
	return textResult("")
}

// appendFile appends value to name, separated from existing content by a
// newline.
func appendFile(fsys afero.Fs, name, value string) error {
	nonEmpty := false
	info, err := fsys.Stat(name)
	switch {
	case err == nil:
		nonEmpty = info.Size() > 0
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	fd, err := fsys.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if nonEmpty {
		value = "\n" + value
	}
	if _, err := fd.WriteString(value); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
