package ssqerr

import (
	"fmt"
)

const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeMalformedRecord    = "MALFORMED_RECORD"
	CodeCandidateExhausted = "CANDIDATE_EXHAUSTED"
	CodeUpstreamError      = "UPSTREAM_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

// Process exit statuses reported by the CLI for each error kind.
const (
	StatusInternalError      = 1
	StatusInvalidRequest     = 2
	StatusMalformedRecord    = 3
	StatusCandidateExhausted = 4
	StatusUpstreamError      = 5
)

var (
	// ErrInvalidReq is returned when a prediction request is rejected before any computation.
	ErrInvalidReq = New(StatusInvalidRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrMalformedRecord is returned when a draw record cannot be tabulated.
	ErrMalformedRecord = New(StatusMalformedRecord, CodeMalformedRecord, "malformed draw record")

	// ErrCandidateExhausted is returned when duplicate resolution runs out of unused candidates.
	// It indicates the number domain is smaller than a candidate set, not bad input data.
	ErrCandidateExhausted = New(StatusCandidateExhausted, CodeCandidateExhausted, "no unused candidate left for duplicate resolution")

	// ErrUpstream is returned when the draw data source fails or answers with an unexpected shape.
	ErrUpstream = New(StatusUpstreamError, CodeUpstreamError, "draw data source failed")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(StatusInternalError, CodeInternalError, "internal error occurred")
)

type Extras map[string]interface{}

type SSQError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *SSQError {
	return &SSQError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e SSQError) Msg(format string, parts ...interface{}) *SSQError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e SSQError) WithExtras(extras Extras) *SSQError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *SSQError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *SSQError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// Is reports errors of the same kind as equal, regardless of message or extras.
func (e *SSQError) Is(target error) bool {
	t, ok := target.(*SSQError)
	if !ok {
		return false
	}
	return e.ErrorCode == t.ErrorCode
}

// ExitCode satisfies cli.ExitCoder.
func (e *SSQError) ExitCode() int {
	return e.StatusCode
}
