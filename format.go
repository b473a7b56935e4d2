package giveup

import (
	"errors"
	"strings"
)

// render composes the report written to standard error when a chain gives up:
//
//	<headline>: <error text>
//	Caused by: <cause text>    (one line per unwrapped cause)
//	Hint: <hint>               (only if set)
//	Example: <example>         (only if set)
//
// A cause whose text already appears in its parent's text is skipped, since
// errors wrapped with fmt.Errorf("...: %w", err) embed the cause in their own
// message and would otherwise be reported twice.
func render(headline string, err error, hint, example string, bold bool) string {
	var b strings.Builder
	if bold {
		b.WriteString("\x1b[1m")
		b.WriteString(headline)
		b.WriteString("\x1b[0m")
	} else {
		b.WriteString(headline)
	}
	b.WriteString(": ")
	b.WriteString(err.Error())
	b.WriteByte('\n')

	prev := err.Error()
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		text := cause.Error()
		if text != "" && !strings.Contains(prev, text) {
			b.WriteString("Caused by: ")
			b.WriteString(text)
			b.WriteByte('\n')
		}
		prev = text
	}

	if hint != "" {
		b.WriteString("Hint: ")
		b.WriteString(hint)
		b.WriteByte('\n')
	}
	if example != "" {
		b.WriteString("Example: ")
		b.WriteString(example)
		b.WriteByte('\n')
	}
	return b.String()
}
