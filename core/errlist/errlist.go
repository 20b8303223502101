// core/errlist/errlist.go
package errlist

import (
	"fmt"
	"strings"
)

// List accumulates per-record failures so a single pass can report every
// data problem instead of stopping at the first one. The zero value is
// ready to use. A List is not safe for concurrent use; parallel phases
// funnel errors through a channel into one collecting goroutine.
type List struct {
	errs []error
}

// Add appends err to the list. Adding nil is a no-op.
func (l *List) Add(err error) {
	if err != nil {
		l.errs = append(l.errs, err)
	}
}

// Len reports how many errors were added.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.errs)
}

// Errors returns the collected errors in insertion order.
func (l *List) Errors() []error {
	if l == nil {
		return nil
	}
	return l.errs
}

// Err returns the list as an error, or nil when nothing was added.
func (l *List) Err() error {
	if l == nil || len(l.errs) == 0 {
		return nil
	}
	return l
}

func (l *List) Error() string {
	switch len(l.errs) {
	case 0:
		return "no errors"
	case 1:
		return l.errs[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d records failed:", len(l.errs))
	for _, e := range l.errs {
		b.WriteString("\n  ")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (l *List) Unwrap() []error {
	return l.Errors()
}
