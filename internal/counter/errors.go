package counter

import "fmt"

// UnsupportedLanguageError is returned when no provider is registered for a
// language code.
type UnsupportedLanguageError struct {
	Code string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q", e.Code)
}

// InvalidConfigurationError is returned when a configuration mutator rejects
// its value.
type InvalidConfigurationError struct {
	Setting string
	Reason  string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Setting, e.Reason)
}

// ProcessingError reports a failure on one input record. Index is the
// position of the record in the input sequence.
type ProcessingError struct {
	Index int
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("failed to process record %d: %v", e.Index, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
