// Package giveup turns unrecoverable errors into user-geared program termination.
//
// It is meant to replace the eprintln-then-os.Exit boilerplate at the top of
// command line tools: wrap the (value, error) pair a call returned, optionally
// attach a hint and an example of the recommended fix, and resolve the chain.
// On success the wrapped value is returned untouched; on failure a short
// plaintext report is written to standard error and the process exits with
// status 1.
//
//	cfg := giveup.On(config.Load(path)).
//		Hint("Create a configuration file").
//		Example("touch " + path).
//		Giveup("Missing configuration file")
package giveup

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// Overridable in tests so the failure branch can be observed in-process.
var (
	stderr io.Writer = os.Stderr
	osExit           = os.Exit
)

// Result wraps a success-or-failure pair together with optional guidance for
// the end user. The zero hint and example are simply omitted from the report.
// Methods use value receivers and return copies, so a Result can be shared or
// re-annotated without affecting earlier chains.
type Result[T any] struct {
	value   T
	err     error
	hint    string
	example string
}

// On wraps the (value, error) pair returned by a call, ready for annotation.
// It is designed to take a two-valued call expression directly:
//
//	f := giveup.On(os.Open(path)).Giveup("Cannot open input")
func On[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// Errorf builds an already-failed Result from a formatted message, for call
// sites that need to give up without an existing error value in hand.
func Errorf(format string, a ...any) Result[struct{}] {
	return Result[struct{}]{err: fmt.Errorf(format, a...)}
}

// Hint returns a copy of the Result carrying guidance on how the user can
// resolve the failure. Calling it again replaces the previous hint.
func (r Result[T]) Hint(text string) Result[T] {
	r.hint = text
	return r
}

// Example returns a copy of the Result carrying a concrete sample command or
// action that resolves the failure. Calling it again replaces the previous
// example.
func (r Result[T]) Example(text string) Result[T] {
	r.example = text
	return r
}

// Giveup resolves the chain. If the wrapped pair holds no error, the wrapped
// value is returned and nothing else happens. Otherwise the headline, the
// error text, and any hint and example are written to standard error and the
// process exits with status 1; control never returns to the caller.
func (r Result[T]) Giveup(headline string) T {
	if r.err == nil {
		return r.value
	}
	log.Debug().Err(r.err).Str("headline", headline).Msg("Giving up")
	fmt.Fprint(stderr, render(headline, r.err, r.hint, r.example, boldable(stderr)))
	osExit(1)
	// Only reached in tests, where osExit is replaced.
	var zero T
	return zero
}

// boldable reports whether w is a terminal, so the headline can be emphasized
// without leaking escape codes into pipes or files.
func boldable(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
