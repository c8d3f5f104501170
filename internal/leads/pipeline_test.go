package leads

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brightbooks/internal/domain"
	apperrors "brightbooks/pkg/errors"
)

func failOnNotify(t *testing.T) Notifier {
	return NotifierFunc(func(ctx context.Context, record interface{}) error {
		t.Fatalf("notifier must not be called, got %T", record)
		return nil
	})
}

func TestSubmitContactAccepted(t *testing.T) {
	conn := newSQLiteDB(t)
	p := newTestPipeline(conn)

	notified := 0
	out := p.Submit(context.Background(), validContact(), testMeta, NotifierFunc(func(ctx context.Context, record interface{}) error {
		notified++
		row, ok := record.(*domain.ContactSubmission)
		require.True(t, ok)
		assert.Equal(t, "Jane Doe", row.FullName)
		return nil
	}))

	assert.True(t, out.Accepted)
	assert.Empty(t, out.Message)
	assert.Equal(t, 1, notified)

	var rows []domain.ContactSubmission
	require.NoError(t, conn.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane Doe", rows[0].FullName)
	assert.Equal(t, "jane@co.com", rows[0].Email)
	assert.True(t, rows[0].PrivacyConsent)
	assert.Equal(t, testMeta.SourceIP, rows[0].SourceIP)
	assert.Equal(t, domain.StatusPending, rows[0].Status)
	assert.Nil(t, rows[0].Company)
}

func TestSubmitContactMissingConsent(t *testing.T) {
	conn := newSQLiteDB(t)
	p := newTestPipeline(conn)

	form := validContact()
	form.PrivacyConsent = false
	out := p.Submit(context.Background(), form, testMeta, failOnNotify(t))

	assert.False(t, out.Accepted)
	assert.Equal(t, "Please agree to the Privacy Policy to continue", out.Message)
	assert.Equal(t, apperrors.ErrCodeInvalidInput, out.Code)
	assert.Zero(t, countRows(t, conn, &domain.ContactSubmission{}))
}

func TestHoneypotPrecedence(t *testing.T) {
	conn := newSQLiteDB(t)
	p := newTestPipeline(conn)

	// Exhaust the budget so a limiter check would be visible as rate limiting
	seedContacts(t, conn, 5, testNow.Add(-10*time.Minute), testMeta.SourceIP)

	forms := []Form{
		&ContactForm{FirstName: "Jane", LastName: "Doe", Email: "jane@co.com", Message: "Hi", PrivacyConsent: true, Honeypot: "http://spam.example"},
		&ContactForm{Honeypot: "x"},
		&NewsletterForm{Email: "bot@example.com", Honeypot: " filled "},
		&WaitlistForm{FirstName: "A", LastName: "B", Email: "a@b.co", Honeypot: "1"},
		&ServiceRequestForm{SolutionID: "bookkeeping", FullName: "A B", Email: "a@b.co", Honeypot: "1"},
		&TechnicalInquiryForm{Honeypot: "1"},
	}

	for _, form := range forms {
		out := p.Submit(context.Background(), form, testMeta, failOnNotify(t))
		assert.False(t, out.Accepted, "%s", form.Kind())
		assert.Equal(t, MsgInvalidSubmission, out.Message, "%s", form.Kind())
		assert.Equal(t, apperrors.ErrCodeBotDetected, out.Code, "%s", form.Kind())
	}

	assert.EqualValues(t, 5, countRows(t, conn, &domain.ContactSubmission{}))
	assert.Zero(t, countRows(t, conn, &domain.NewsletterSubscription{}))
	assert.Zero(t, countRows(t, conn, &domain.WaitlistEntry{}))
	assert.Zero(t, countRows(t, conn, &domain.ServiceRequest{}))
	assert.Zero(t, countRows(t, conn, &domain.TechnicalInquiry{}))
}

func TestHoneypotWhitespaceIsHuman(t *testing.T) {
	conn := newSQLiteDB(t)
	p := newTestPipeline(conn)

	form := validContact()
	form.Honeypot = "   "
	out := p.Submit(context.Background(), form, testMeta, nil)
	assert.True(t, out.Accepted)
}

func TestValidationOrdering(t *testing.T) {
	conn := newSQLiteDB(t)
	p := newTestPipeline(conn)

	out := p.Submit(context.Background(), &ContactForm{FirstName: "Jane", Email: "not-an-email", Message: "Hi"}, testMeta, nil)
	assert.False(t, out.Accepted)
	assert.Equal(t, MsgRequiredFields, out.Message)

	out = p.Submit(context.Background(), &ContactForm{FirstName: "Jane", LastName: "Doe", Email: "not-an-email", Message: "Hi"}, testMeta, nil)
	assert.Equal(t, MsgInvalidEmail, out.Message)

	assert.Zero(t, countRows(t, conn, &domain.ContactSubmission{}))
}

func TestNewsletterIdempotentSubscribe(t *testing.T) {
	conn := newSQLiteDB(t)
	p := newTestPipeline(conn)

	first := p.Submit(context.Background(), &NewsletterForm{Email: "reader@example.com"}, testMeta, nil)
	require.True(t, first.Accepted)
	assert.False(t, first.Duplicate())

	second := p.Submit(context.Background(), &NewsletterForm{Email: " Reader@Example.com "}, testMeta, nil)
	assert.True(t, second.Accepted)
	assert.True(t, second.Duplicate())
	assert.Equal(t, "You are already subscribed to our newsletter!", second.Message)

	assert.EqualValues(t, 1, countRows(t, conn, &domain.NewsletterSubscription{}))

	var row domain.NewsletterSubscription
	require.NoError(t, conn.First(&row).Error)
	assert.Equal(t, DefaultNewsletterSource, row.Source)
}

func TestEmailNormalization(t *testing.T) {
	conn := newSQLiteDB(t)
	p := newTestPipeline(conn)

	form := validContact()
	form.Email = " Foo@Example.COM "
	require.True(t, p.Submit(context.Background(), form, testMeta, nil).Accepted)

	var row domain.ContactSubmission
	require.NoError(t, conn.First(&row).Error)
	assert.Equal(t, "foo@example.com", row.Email)
}

func TestNotifierFailureKeepsSuccess(t *testing.T) {
	conn := newSQLiteDB(t)
	p := newTestPipeline(conn)

	out := p.Submit(context.Background(), validContact(), testMeta, NotifierFunc(func(ctx context.Context, record interface{}) error {
		return errors.New("smtp: connection refused")
	}))
	assert.True(t, out.Accepted)

	out = p.Submit(context.Background(), validContact(), testMeta, NotifierFunc(func(ctx context.Context, record interface{}) error {
		panic("template exploded")
	}))
	assert.True(t, out.Accepted)

	assert.EqualValues(t, 2, countRows(t, conn, &domain.ContactSubmission{}))
}

func TestSubmitMissingTable(t *testing.T) {
	conn := openSQLite(t)
	p := newTestPipeline(conn)

	out := p.Submit(context.Background(), validContact(), testMeta, failOnNotify(t))
	assert.False(t, out.Accepted)
	assert.Equal(t, apperrors.ErrCodeStorageUnavailable, out.Code)
	assert.Equal(t, "Service temporarily unavailable. Please try again later.", out.Message)
}

func TestSubmitWaitlistDefaults(t *testing.T) {
	conn := newSQLiteDB(t)
	p := newTestPipeline(conn)

	out := p.Submit(context.Background(), &WaitlistForm{
		FirstName: " Ada ",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+1 (555) 010-2030",
		Source:    "template:cash-flow",
	}, RequestMeta{}, nil)
	require.True(t, out.Accepted)

	var row domain.WaitlistEntry
	require.NoError(t, conn.First(&row).Error)
	assert.Equal(t, "Ada Lovelace", row.Name)
	assert.Equal(t, "Phone: +15550102030", row.Message)
	assert.Equal(t, "template:cash-flow", row.Source)
	assert.Equal(t, domain.StatusPending, row.Status)
	assert.Equal(t, domain.UnknownSourceIP, row.SourceIP)
	assert.Nil(t, row.UserAgent)
}

func TestSubmitTechnicalInquiry(t *testing.T) {
	conn := newSQLiteDB(t)
	p := newTestPipeline(conn)

	form := &TechnicalInquiryForm{
		FirstName:      "Grace",
		LastName:       "Hopper",
		Email:          "grace@example.com",
		Subject:        "VAT",
		Background:     "We import goods from the EU.",
		PrivacyConsent: true,
	}
	out := p.Submit(context.Background(), form, testMeta, nil)
	assert.False(t, out.Accepted)
	assert.Equal(t, MsgInquiryConsent, out.Message)

	form.TermsConsent = true
	out = p.Submit(context.Background(), form, testMeta, nil)
	require.True(t, out.Accepted)

	row, ok := out.Record.(*domain.TechnicalInquiry)
	require.True(t, ok)
	assert.NotEmpty(t, row.ReferenceID)
	assert.Equal(t, "Grace Hopper", row.FullName)
	assert.Equal(t, domain.StatusPending, row.Status)
	assert.EqualValues(t, 1, countRows(t, conn, &domain.TechnicalInquiry{}))
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "accepted", outcomeLabel(Outcome{Accepted: true}))
	assert.Equal(t, "already_subscribed", outcomeLabel(Outcome{Accepted: true, Code: apperrors.ErrCodeDuplicateSubscription}))
	assert.Equal(t, "rate_limited", outcomeLabel(reject(apperrors.ErrCodeRateLimited, MsgRateLimited)))
	assert.Equal(t, "internal_error", outcomeLabel(Outcome{}))
}
