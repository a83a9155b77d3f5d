package greeter

import (
	"errors"
	"fmt"
	"io"
)

// ErrMissingName is matched by errors returned when no recipient was supplied.
var ErrMissingName = errors.New("missing name")

type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Length)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrMissingName
}

// NameFromArgs returns the first argument. Remaining arguments are ignored.
func NameFromArgs(args []string) (string, error) {
	if len(args) == 0 {
		return "", &IndexOutOfRangeError{Index: 0, Length: 0}
	}
	return args[0], nil
}

// Greeting formats the greeting for name.
func Greeting(name string) string {
	return "Hello " + name + "!"
}

// Greet writes the greeting for name to w, followed by a blank line.
func Greet(w io.Writer, name string) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", Greeting(name)); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}
	return nil
}
