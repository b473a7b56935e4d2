package giveup

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// causeErr is an error whose text does not embed its cause, like most custom
// error types with an Unwrap method.
type causeErr struct {
	msg   string
	cause error
}

func (e *causeErr) Error() string { return e.msg }
func (e *causeErr) Unwrap() error { return e.cause }

func TestRender(t *testing.T) {
	root := errors.New("disk full")
	mid := &causeErr{msg: "write failed", cause: root}

	tests := []struct {
		name     string
		headline string
		err      error
		hint     string
		example  string
		want     string
	}{
		{
			name:     "flat error",
			headline: "Missing configuration file",
			err:      errors.New("file not found"),
			want:     "Missing configuration file: file not found\n",
		},
		{
			name:     "hint and example",
			headline: "Missing configuration file",
			err:      errors.New("file not found"),
			hint:     "Create a configuration file",
			example:  "touch config-filename",
			want: "Missing configuration file: file not found\n" +
				"Hint: Create a configuration file\n" +
				"Example: touch config-filename\n",
		},
		{
			name:     "cause chain with distinct texts",
			headline: "Cannot save results",
			err:      &causeErr{msg: "flush failed", cause: mid},
			want: "Cannot save results: flush failed\n" +
				"Caused by: write failed\n" +
				"Caused by: disk full\n",
		},
		{
			name:     "wrapped cause already embedded",
			headline: "Cannot save results",
			err:      fmt.Errorf("flush failed: %w", root),
			want:     "Cannot save results: flush failed: disk full\n",
		},
		{
			name:     "cause chain precedes hint",
			headline: "Cannot save results",
			err:      &causeErr{msg: "write failed", cause: root},
			hint:     "Free up some space",
			want: "Cannot save results: write failed\n" +
				"Caused by: disk full\n" +
				"Hint: Free up some space\n",
		},
		{
			name:     "empty cause text is skipped",
			headline: "Operation failed",
			err:      &causeErr{msg: "outer", cause: errors.New("")},
			want:     "Operation failed: outer\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(tt.headline, tt.err, tt.hint, tt.example, false)
			if got != tt.want {
				t.Errorf("render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_BoldWrapsOnlyTheHeadline(t *testing.T) {
	got := render("Operation failed", errors.New("boom"), "", "", true)
	want := "\x1b[1mOperation failed\x1b[0m: boom\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRender_NoEscapesWithoutTerminal(t *testing.T) {
	got := render("Operation failed", errors.New("boom"), "a hint", "an example", false)
	if strings.Contains(got, "\x1b") {
		t.Errorf("render() leaked escape codes into non-terminal output: %q", got)
	}
}
