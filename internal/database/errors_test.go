package database

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.True(t, IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: newsletter_subscriptions.email (2067)")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsMissingRelation(t *testing.T) {
	assert.True(t, IsMissingRelation(&pgconn.PgError{Code: "42P01"}))
	assert.True(t, IsMissingRelation(errors.New("SQL logic error: no such table: insights (1)")))
	assert.True(t, IsMissingRelation(errors.New(`ERROR: relation "insights" does not exist`)))
	assert.False(t, IsMissingRelation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsMissingRelation(errors.New("syntax error")))
	assert.False(t, IsMissingRelation(nil))
}

func TestIsConnectionFailure(t *testing.T) {
	assert.True(t, IsConnectionFailure(driver.ErrBadConn))
	assert.True(t, IsConnectionFailure(fmt.Errorf("query: %w", &net.OpError{Op: "dial", Err: errors.New("connection refused")})))
	assert.False(t, IsConnectionFailure(errors.New("syntax error")))
	assert.False(t, IsConnectionFailure(nil))
}
