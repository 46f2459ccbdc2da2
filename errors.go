package urlregex

import "fmt"

// InsufficientDataError is returned when a pattern is requested before any
// URL has been learned.
type InsufficientDataError struct {
	Count int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: only %d URLs learned", e.Count)
}

// PatternError is returned when the regex engine rejects a built pattern.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("compile pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
