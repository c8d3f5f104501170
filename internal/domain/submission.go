package domain

import (
	"bytes"
	"time"
)

// FormKind identifies which form produced a submission
type FormKind string

const (
	FormContact          FormKind = "contact"
	FormNewsletter       FormKind = "newsletter"
	FormWaitlist         FormKind = "waitlist"
	FormServiceRequest   FormKind = "service_request"
	FormTechnicalInquiry FormKind = "technical_inquiry"
)

// Submission statuses
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// UnknownSourceIP is stored when the request carried no usable client address
const UnknownSourceIP = "unknown"

// Meta holds the columns shared by every persisted submission
type Meta struct {
	SourceIP  string    `gorm:"size:64;not null;default:'unknown';index" json:"source_ip"`
	UserAgent *string   `gorm:"size:512" json:"user_agent"`
	Status    string    `gorm:"size:16;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

// Stamp fills the shared columns. An empty sourceIP becomes UnknownSourceIP
// and an empty status becomes StatusPending.
func (m *Meta) Stamp(sourceIP, userAgent string, now time.Time) {
	if sourceIP == "" {
		sourceIP = UnknownSourceIP
	}
	m.SourceIP = sourceIP
	if userAgent != "" {
		ua := userAgent
		m.UserAgent = &ua
	}
	if m.Status == "" {
		m.Status = StatusPending
	}
	m.CreatedAt = now.UTC()
}

// Consent is a boolean that only accepts the JSON literal true. Strings,
// numbers, null and absent values all decode to false.
type Consent bool

// UnmarshalJSON implements json.Unmarshaler
func (c *Consent) UnmarshalJSON(data []byte) error {
	*c = Consent(bytes.Equal(bytes.TrimSpace(data), []byte("true")))
	return nil
}

// Accepted reports whether consent was explicitly given
func (c Consent) Accepted() bool {
	return bool(c)
}
