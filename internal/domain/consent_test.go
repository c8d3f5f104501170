package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsentOnlyAcceptsLiteralTrue(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: `{"consent": true}`, want: true},
		{raw: `{"consent": false}`, want: false},
		{raw: `{"consent": "true"}`, want: false},
		{raw: `{"consent": 1}`, want: false},
		{raw: `{"consent": null}`, want: false},
		{raw: `{}`, want: false},
	}

	for _, tt := range tests {
		var body struct {
			Consent Consent `json:"consent"`
		}
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &body), tt.raw)
		assert.Equal(t, tt.want, body.Consent.Accepted(), tt.raw)
	}
}

func TestMetaStamp(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))

	var m Meta
	m.Stamp("", "", now)
	assert.Equal(t, UnknownSourceIP, m.SourceIP)
	assert.Nil(t, m.UserAgent)
	assert.Equal(t, StatusPending, m.Status)
	assert.Equal(t, time.UTC, m.CreatedAt.Location())
	assert.True(t, m.CreatedAt.Equal(now))

	m = Meta{Status: StatusAccepted}
	m.Stamp("203.0.113.9", "curl/8.0", now)
	assert.Equal(t, "203.0.113.9", m.SourceIP)
	require.NotNil(t, m.UserAgent)
	assert.Equal(t, "curl/8.0", *m.UserAgent)
	assert.Equal(t, StatusAccepted, m.Status)
}
