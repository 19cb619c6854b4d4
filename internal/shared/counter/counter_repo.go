package counter

import (
	"context"
	"database/sql"

	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"gorm.io/gorm"
)

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	NextValue(ctx context.Context, entityID int64, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: crud.BindTx(r.db, tx)}
}

// NextValue increments and returns the sequence for (entityID, counterType).
// The upsert keeps concurrent callers from observing the same value.
func (r *repository) NextValue(ctx context.Context, entityID int64, counterType string) (int64, error) {
	var next int64

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO entity_counters (entity_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, NOW())
		ON CONFLICT (entity_id, counter_type) DO UPDATE
		SET last_value = entity_counters.last_value + 1, updated_at = NOW()
		RETURNING last_value
	`, entityID, counterType).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}
