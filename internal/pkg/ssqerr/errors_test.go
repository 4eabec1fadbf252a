package ssqerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(StatusInvalidRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Wrap(ErrMalformedRecord.Msg("record %d: bad blue", 3), "tabulate")

	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.False(t, errors.Is(err, ErrCandidateExhausted))
	assert.False(t, errors.Is(err, ErrInvalidReq))
}

func TestInvalidViolationsKeepsBase(t *testing.T) {
	e := NewInvalidViolations([]string{"count"})

	assert.Nil(t, ErrInvalidReq.Extras)
	assert.NotNil(t, e.Extras)
	assert.Equal(t, StatusInvalidRequest, e.ExitCode())
	assert.Equal(t, []string{"count"}, (*e.Extras)["violations"])
}
