// Package forms holds the storefront's form controllers: a draft record per
// form, declarative validation before any network call, and a
// submission-in-flight flag so a form can only have one call on the wire.
package forms

import (
	"errors"
	"fmt"
	"io"
)

// ErrSubmitInFlight rejects a second Submit while the first is still waiting
// on the server.
var ErrSubmitInFlight = errors.New("forms: submission already in flight")

// Notifier receives the transient user-facing messages (toasts in the web
// client, lines on the terminal here).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// WriterNotifier prints notifications to a writer, one per line.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Success(msg string) { fmt.Fprintln(n.W, "✔ "+msg) }
func (n WriterNotifier) Error(msg string)   { fmt.Fprintln(n.W, "✖ "+msg) }
