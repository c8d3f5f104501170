package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOfWrappedError(t *testing.T) {
	base := Wrap(ErrCodeStorageUnavailable, "Service temporarily unavailable.", fmt.Errorf("no such table: contact_submissions"))
	wrapped := fmt.Errorf("insert contact: %w", base)

	assert.Equal(t, ErrCodeStorageUnavailable, CodeOf(wrapped))
	assert.True(t, IsStorageUnavailable(wrapped))
	assert.False(t, IsRateLimited(wrapped))
	assert.Equal(t, "Service temporarily unavailable.", MessageOf(wrapped, "fallback"))
}

func TestCodeOfPlainError(t *testing.T) {
	err := fmt.Errorf("boom")

	assert.Equal(t, ErrCodeInternalError, CodeOf(err))
	assert.Equal(t, "fallback", MessageOf(err, "fallback"))
	assert.False(t, IsNotFound(nil))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "RATE_LIMITED: slow down", New(ErrCodeRateLimited, "slow down").Error())
	assert.Equal(t, "BAD_REQUEST: bad (eof)", Wrap(ErrCodeBadRequest, "bad", fmt.Errorf("eof")).Error())
}
