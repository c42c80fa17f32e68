package domain

import (
	"fmt"
)

// ErrorKind classifies a load failure.
type ErrorKind string

const (
	// KindNetwork covers transport failures and non-success HTTP statuses.
	KindNetwork ErrorKind = "network"

	// KindDecode covers malformed response bodies.
	KindDecode ErrorKind = "decode"

	// KindService covers a non-OK status reported by the places service.
	KindService ErrorKind = "service"

	// KindScriptLoad covers a failed maps API bootstrap.
	KindScriptLoad ErrorKind = "script_load"
)

// Sentinels for errors.Is matching on the error kind.
var (
	ErrNetwork    = &LoadError{Kind: KindNetwork}
	ErrDecode     = &LoadError{Kind: KindDecode}
	ErrService    = &LoadError{Kind: KindService}
	ErrScriptLoad = &LoadError{Kind: KindScriptLoad}
)

// LoadError is returned by record sources. Every LoadError is terminal for
// the mount that produced it.
type LoadError struct {
	Kind       ErrorKind
	StatusCode int    // HTTP status, when the failure came from one
	Status     string // places service status, e.g. "ZERO_RESULTS"
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind) + " error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches any LoadError of the same kind.
func (e *LoadError) Is(target error) bool {
	t, ok := target.(*LoadError)
	return ok && t.Kind == e.Kind
}

func NewNetworkError(statusCode int, err error) *LoadError {
	msg := "request failed"
	if statusCode != 0 {
		msg = fmt.Sprintf("request failed with status %d", statusCode)
	}
	return &LoadError{Kind: KindNetwork, StatusCode: statusCode, Message: msg, Err: err}
}

func NewDecodeError(err error) *LoadError {
	return &LoadError{Kind: KindDecode, Message: "failed to decode response", Err: err}
}

func NewServiceError(status string) *LoadError {
	return &LoadError{Kind: KindService, Status: status, Message: "failed to fetch places: " + status}
}

func NewScriptLoadError(err error) *LoadError {
	return &LoadError{Kind: KindScriptLoad, Message: "failed to load Google Maps API", Err: err}
}
