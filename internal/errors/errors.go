// Package errors defines the failure taxonomy shared by the dispatch and run-listing paths.
package errors

import (
	"errors"
	"fmt"
)

// CredentialMissingError indicates that no usable token was found after every source was tried.
// No network call is made when this error is returned.
type CredentialMissingError struct {
	Operation string
}

func (e *CredentialMissingError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("token unavailable: cannot %s without a GitHub token", e.Operation)
	}

	return "token unavailable"
}

// NetworkError indicates the transport failed before a response was obtained.
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error while trying to %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteRejectionError indicates a response was received but its status was not 2xx.
// Body holds the response text verbatim.
type RemoteRejectionError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *RemoteRejectionError) Error() string {
	return fmt.Sprintf("failed to %s: %d - %s", e.Operation, e.StatusCode, e.Body)
}

// ParseError indicates a response body was not valid JSON or lacked an expected field.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("response is missing field %q", e.Field)
	}

	return fmt.Sprintf("failed to parse response field %q: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RunsError is the failure returned when listing workflow runs. Its message is
// generic; the underlying cause is only reachable through Unwrap.
type RunsError struct {
	Cause error
}

func (e *RunsError) Error() string {
	return "failed to fetch workflow runs"
}

func (e *RunsError) Unwrap() error {
	return e.Cause
}

// IsCredentialMissing reports whether err, or anything it wraps, is a CredentialMissingError.
func IsCredentialMissing(err error) bool {
	var missing *CredentialMissingError
	return errors.As(err, &missing)
}

// StatusCode extracts the HTTP status from a RemoteRejectionError in the chain, or 0.
func StatusCode(err error) int {
	var rejection *RemoteRejectionError
	if errors.As(err, &rejection) {
		return rejection.StatusCode
	}

	return 0
}
