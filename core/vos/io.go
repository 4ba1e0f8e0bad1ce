package vos

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// VIO holds the standard streams of a session.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// LineReader reads one line of interactive input after showing a prompt.
//
// The returned line never contains the trailing newline. io.EOF is returned
// once the input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type VIOAdapter struct {
	IStdin  io.ReadCloser
	IStdout io.WriteCloser
	IStderr io.WriteCloser
}

func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *VIOAdapter {
	return &VIOAdapter{
		IStdin:  toReadCloserOrDiscard(stdin),
		IStdout: toWriteCloserOrDiscard(stdout),
		IStderr: toWriteCloserOrDiscard(stderr),
	}
}

// NewNullIO creates a valid /dev/null style I/O, reads won't work and
// writes will be discarded.
func NewNullIO() VIO {
	return NewVIOAdapter(nil, nil, nil)
}

var _ VIO = (*VIOAdapter)(nil)

func (pr *VIOAdapter) Stdin() io.ReadCloser {
	return pr.IStdin
}

func (pr *VIOAdapter) Stdout() io.WriteCloser {
	return pr.IStdout
}

func (pr *VIOAdapter) Stderr() io.WriteCloser {
	return pr.IStderr
}

// StreamLineReader implements LineReader over a VIO. The prompt is written
// to stdout and a single buffered reader is kept for stdin so input that was
// read ahead isn't lost between calls.
type StreamLineReader struct {
	mu     sync.Mutex
	out    io.Writer
	in     io.Reader
	reader *bufio.Reader
}

func NewStreamLineReader(files VIO) *StreamLineReader {
	return &StreamLineReader{
		out: files.Stdout(),
		in:  files.Stdin(),
	}
}

var _ LineReader = (*StreamLineReader)(nil)

// ReadLine implements LineReader.ReadLine.
func (s *StreamLineReader) ReadLine(prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reader == nil {
		s.reader = bufio.NewReader(s.in)
	}

	if prompt != "" {
		fmt.Fprint(s.out, prompt)
	}

	line, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func toWriteCloserOrDiscard(w io.Writer) io.WriteCloser {
	if w == nil {
		return &devNull{}
	}
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}

	return nopWriteCloser{w}
}

func toReadCloserOrDiscard(r io.Reader) io.ReadCloser {
	if r == nil {
		return &devNull{}
	}
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}

	return io.NopCloser(r)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// devNull implemnets io.Reader and io.Writer, always returning EOF for reads
// and discarding writes.
type devNull struct{}

var _ io.ReadCloser = (*devNull)(nil)
var _ io.WriteCloser = (*devNull)(nil)

func (*devNull) Read([]byte) (int, error) {
	return 0, io.EOF
}

func (*devNull) Close() error {
	return nil
}

func (*devNull) Write(b []byte) (int, error) {
	return len(b), nil
}

// OSIO is a VIO connected to the process' standard streams.
type OSIO struct{}

var _ VIO = (*OSIO)(nil)

func (*OSIO) Stdin() io.ReadCloser {
	return os.Stdin
}

func (*OSIO) Stdout() io.WriteCloser {
	return os.Stdout
}

func (*OSIO) Stderr() io.WriteCloser {
	return os.Stderr
}
