package leads

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"brightbooks/internal/database"
	"brightbooks/internal/domain"
	"brightbooks/internal/metrics"
	apperrors "brightbooks/pkg/errors"
)

// Gateway inserts submission rows and translates storage errors into the
// pipeline's error kinds
type Gateway struct {
	db *gorm.DB
}

// NewGateway creates a persistence gateway over db
func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Insert writes one row. The returned error is always an *apperrors.AppError:
//   - DuplicateSubscription for a unique violation on a newsletter row
//   - StorageUnavailable when the table is missing or the database is unreachable
//   - StorageFailure otherwise
func (g *Gateway) Insert(ctx context.Context, kind domain.FormKind, record interface{}) error {
	start := time.Now()
	err := g.db.WithContext(ctx).Create(record).Error
	metrics.RecordDBQuery("insert_"+string(kind), time.Since(start), err)
	if err == nil {
		return nil
	}
	return classifyInsertError(kind, err)
}

func classifyInsertError(kind domain.FormKind, err error) error {
	switch {
	case kind == domain.FormNewsletter && database.IsUniqueViolation(err):
		return apperrors.Wrap(apperrors.ErrCodeDuplicateSubscription, MsgAlreadySubscribed, err)
	case database.IsMissingRelation(err), database.IsConnectionFailure(err):
		log.Printf("[LEADS] Insert %s failed: storage unavailable: %v", kind, err)
		return apperrors.Wrap(apperrors.ErrCodeStorageUnavailable, MsgServiceUnavailable, err)
	default:
		log.Printf("[LEADS] Insert %s failed: %v", kind, err)
		return apperrors.Wrap(apperrors.ErrCodeStorageFailure, MsgGenericFailure, err)
	}
}
