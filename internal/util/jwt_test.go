package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadTokenRoundTrip(t *testing.T) {
	signer := NewDownloadSigner("a-very-long-test-secret-for-download-tokens", 30*time.Minute)

	token, err := signer.GenerateToken("cash-flow-forecast", "jane@co.com")
	require.NoError(t, err)

	claims, err := signer.ValidateToken(token, "cash-flow-forecast")
	require.NoError(t, err)
	assert.Equal(t, "cash-flow-forecast", claims.Template)
	assert.Equal(t, "jane@co.com", claims.Subject)
}

func TestDownloadTokenRejectsOtherTemplate(t *testing.T) {
	signer := NewDownloadSigner("a-very-long-test-secret-for-download-tokens", 30*time.Minute)

	token, err := signer.GenerateToken("cash-flow-forecast", "jane@co.com")
	require.NoError(t, err)

	_, err = signer.ValidateToken(token, "budget-planner")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDownloadTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewDownloadSigner("a-very-long-test-secret-for-download-tokens", 30*time.Minute)
	verifier := NewDownloadSigner("another-secret-that-does-not-match-at-all", 30*time.Minute)

	token, err := issuer.GenerateToken("cash-flow-forecast", "jane@co.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token, "cash-flow-forecast")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDownloadTokenExpires(t *testing.T) {
	signer := NewDownloadSigner("a-very-long-test-secret-for-download-tokens", 30*time.Minute)
	issuedAt := time.Now().Add(-2 * time.Hour)
	signer.now = func() time.Time { return issuedAt }

	token, err := signer.GenerateToken("cash-flow-forecast", "jane@co.com")
	require.NoError(t, err)

	signer.now = time.Now
	_, err = signer.ValidateToken(token, "cash-flow-forecast")
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestDownloadTokenGarbage(t *testing.T) {
	signer := NewDownloadSigner("a-very-long-test-secret-for-download-tokens", time.Minute)

	_, err := signer.ValidateToken("not.a.token", "cash-flow-forecast")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
