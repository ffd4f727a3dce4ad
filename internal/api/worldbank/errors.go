package worldbank

import "fmt"

// RetrievalError means the API could not be reached or answered with a
// non-2xx status. The query was not completed and no partial series exists.
type RetrievalError struct {
	CountryCode   string
	IndicatorCode string
	Err           error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieving %s/%s: %v", e.CountryCode, e.IndicatorCode, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// FormatError means the API answered, but the payload was not JSON or did
// not match the two-element [metadata, observations] envelope.
type FormatError struct {
	CountryCode   string
	IndicatorCode string
	Err           error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected payload for %s/%s: %v", e.CountryCode, e.IndicatorCode, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
