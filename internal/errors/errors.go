package errors

import (
	"fmt"
)

// CollectorRejectedErr is raised when collector responds with non-success status code
type CollectorRejectedErr struct {
	StatusCode int
	message    string
}

func (e *CollectorRejectedErr) Error() string {
	return e.message
}

// NewCollectorRejectedErr builds CollectorRejectedErr for provided status code
func NewCollectorRejectedErr(statusCode int) *CollectorRejectedErr {
	return &CollectorRejectedErr{
		StatusCode: statusCode,
		message:    fmt.Sprintf("collector rejected customer with status code %d", statusCode),
	}
}

// CollectorUnavailableErr is raised when request didn't reach collector or no response was received
type CollectorUnavailableErr struct {
	target string
	cause  error
}

func (e *CollectorUnavailableErr) Error() string {
	return fmt.Sprintf("collector %s is unavailable - %v", e.target, e.cause)
}

func (e *CollectorUnavailableErr) Unwrap() error {
	return e.cause
}

// NewCollectorUnavailableErr builds CollectorUnavailableErr for target with transport failure cause
func NewCollectorUnavailableErr(target string, cause error) *CollectorUnavailableErr {
	return &CollectorUnavailableErr{
		target: target,
		cause:  cause,
	}
}
