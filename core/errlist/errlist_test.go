// core/errlist/errlist_test.go
package errlist

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type recordError struct{ id string }

func (e *recordError) Error() string { return "record " + e.id + ": bad" }

func TestEmptyListErrNil(t *testing.T) {
	var l List
	if err := l.Err(); err != nil {
		t.Fatalf("Err() on empty list = %v, want nil", err)
	}
	var nilList *List
	if err := nilList.Err(); err != nil {
		t.Fatalf("Err() on nil list = %v, want nil", err)
	}
}

func TestAddNilIgnored(t *testing.T) {
	var l List
	l.Add(nil)
	l.Add(fmt.Errorf("boom"))
	l.Add(nil)
	if l.Len() != 1 {
		t.Fatalf("Len = %d, want 1", l.Len())
	}
}

func TestSingleErrorMessagePassesThrough(t *testing.T) {
	var l List
	l.Add(fmt.Errorf("record p1: sequence length 5 != structure length 4"))
	got := l.Err().Error()
	if got != "record p1: sequence length 5 != structure length 4" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestMultiErrorMessageListsAll(t *testing.T) {
	var l List
	l.Add(fmt.Errorf("record p1: bad"))
	l.Add(fmt.Errorf("record p2: worse"))
	got := l.Err().Error()
	if !strings.HasPrefix(got, "2 records failed:") {
		t.Fatalf("Error() = %q, want '2 records failed:' prefix", got)
	}
	if !strings.Contains(got, "record p1: bad") || !strings.Contains(got, "record p2: worse") {
		t.Fatalf("Error() missing entries: %q", got)
	}
}

func TestErrorsAsFindsTypedError(t *testing.T) {
	var l List
	l.Add(fmt.Errorf("plain"))
	l.Add(&recordError{id: "p7"})
	var re *recordError
	if !errors.As(l.Err(), &re) {
		t.Fatal("errors.As failed to find *recordError")
	}
	if re.id != "p7" {
		t.Fatalf("found id %q, want p7", re.id)
	}
}
