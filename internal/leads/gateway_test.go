package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	apperrors "brightbooks/pkg/errors"
)

func TestGatewayPostgresErrors(t *testing.T) {
	tests := []struct {
		name     string
		form     Form
		table    string
		err      error
		accepted bool
		code     apperrors.ErrorCode
		message  string
	}{
		{
			name:     "newsletter unique violation",
			form:     &NewsletterForm{Email: "reader@example.com"},
			table:    "newsletter_subscriptions",
			err:      &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			accepted: true,
			code:     apperrors.ErrCodeDuplicateSubscription,
			message:  MsgAlreadySubscribed,
		},
		{
			name:    "missing relation",
			form:    validContact(),
			table:   "contact_submissions",
			err:     &pgconn.PgError{Code: "42P01", Message: `relation "contact_submissions" does not exist`},
			code:    apperrors.ErrCodeStorageUnavailable,
			message: MsgServiceUnavailable,
		},
		{
			name:    "unique violation outside newsletter",
			form:    &ServiceRequestForm{SolutionID: "payroll", FullName: "Sam Lee", Email: "sam@example.com"},
			table:   "service_requests",
			err:     &pgconn.PgError{Code: "23505"},
			code:    apperrors.ErrCodeStorageFailure,
			message: MsgGenericFailure,
		},
		{
			name:    "other error",
			form:    validContact(),
			table:   "contact_submissions",
			err:     errors.New("value too long for type character varying(255)"),
			code:    apperrors.ErrCodeStorageFailure,
			message: MsgGenericFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockDB(t)
			p := NewPipeline(conn, Policies{})

			mock.ExpectQuery(`INSERT INTO "` + tt.table + `"`).WillReturnError(tt.err)

			out := p.Submit(context.Background(), tt.form, testMeta, failOnNotify(t))
			assert.Equal(t, tt.accepted, out.Accepted)
			assert.Equal(t, tt.code, out.Code)
			assert.Equal(t, tt.message, out.Message)
			assert.Nil(t, out.Record)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
