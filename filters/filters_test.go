package filters

import (
	"strings"
	"testing"

	"github.com/josephlewis42/pipesh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestGrep(t *testing.T) {
	cases := map[string]struct {
		input string
		args  []string
		want  string
	}{
		"usage":            {input: "a\n", want: "Usage: grep <pattern>"},
		"blank pattern":    {input: "a\n", args: []string{" "}, want: "Usage: grep <pattern>"},
		"case insensitive": {input: "abc\nAbc\nxyz\nABC", args: []string{"ABC"}, want: "abc\nAbc\nABC\n"},
		"literal":          {input: "a.c\nabc\n", args: []string{"a.c"}, want: "a.c\n"},
		"joined words":     {input: "hello world\nhello\n", args: []string{"hello", "world"}, want: "hello world\n"},
		"no match":         {input: "abc\n", args: []string{"zz"}, want: ""},
		"empty input":      {args: []string{"a"}, want: ""},
		"metacharacters":   {input: "(x)*\nx\n", args: []string{"(x)*"}, want: "(x)*\n"},
		"crlf kept":         {input: "abc\r\nxyz\r\n", args: []string{"abc"}, want: "abc\r\n"},
		"invalid utf8":      {input: "a\xffb\nab\n", args: []string{"\xff"}, want: "a\xffb\n"},
		"invalid utf8 case": {input: "A\xffB\n", args: []string{"a\xffb"}, want: "A\xffB\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := Grep(vostest.NewDeterministicOS(""), tc.input, tc.args)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGrep_longLine(t *testing.T) {
	line := strings.Repeat("x", 100000) + "needle"
	got, err := Grep(vostest.NewDeterministicOS(""), line, []string{"NEEDLE"})
	assert.Nil(t, err)
	assert.Equal(t, line+"\n", got)
}

func TestUniq(t *testing.T) {
	cases := map[string]struct {
		input string
		args  []string
		want  string
	}{
		"usage":           {input: "a\n", args: []string{"-c"}, want: "Usage: uniq"},
		"empty":           {want: ""},
		"first occurence": {input: "b\na\nb\nc\na\n", want: "b\na\nc\n"},
		"no trailing":     {input: "x\nx", want: "x\n"},
		"case sensitive":  {input: "x\nX\n", want: "x\nX\n"},
		"carriage return": {input: "a\r\na\n", want: "a\r\na\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := Uniq(vostest.NewDeterministicOS(""), tc.input, tc.args)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUniq_set(t *testing.T) {
	inputs := map[string]string{
		"lf":    "one\ntwo\none\nthree\ntwo\none\n",
		"mixed": "one\r\none\ntwo\r\ntwo\r\none\n",
	}

	for tn, input := range inputs {
		t.Run(tn, func(t *testing.T) {
			got, err := Uniq(vostest.NewDeterministicOS(""), input, nil)
			assert.Nil(t, err)

			distinct := make(map[string]bool)
			for _, line := range splitLines(input) {
				distinct[line] = true
			}
			out := splitLines(got)
			assert.Len(t, out, len(distinct))
			for _, line := range out {
				assert.True(t, distinct[line], line)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Nil(t, splitLines("\n"))
	assert.Equal(t, []string{"a"}, splitLines("a\n"))
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\n\nb"))
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry(Options{})

	var names []string
	for _, spec := range registry.List() {
		names = append(names, spec.Name)
	}
	assert.Equal(t, []string{"grep", "less", "more", "uniq"}, names)

	more, _ := registry.Lookup("more")
	assert.True(t, more.Interactive)
	grep, _ := registry.Lookup("grep")
	assert.False(t, grep.Interactive)
}
