package organization

import (
	"context"
	"database/sql"

	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=organization_repo.go -destination=mock/organization_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, org *Organization) error
	FindAll(ctx context.Context) ([]Organization, error)
	FindOne(ctx context.Context, id int64) (*Organization, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*Organization, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]Organization, error)
	FindByUniqueFields(ctx context.Context, values map[string]any, excludeID int64) (*Organization, error)
	FindPending(ctx context.Context) ([]PendingOrganization, error)
	// Approve sets account_status to approved. It returns nil, nil when id
	// does not exist.
	Approve(ctx context.Context, id int64) (*Organization, error)
}

type repository struct {
	crud.Repository[Organization]
	db    *gorm.DB
	table crud.Table
}

// NewRepository scopes the repository to the typed view of orgType. An empty
// orgType covers every organization.
func NewRepository(db *gorm.DB, orgType string) Repository {
	table := TableFor(orgType)
	return &repository{
		Repository: crud.NewRepository[Organization](db, table),
		db:         db,
		table:      table,
	}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		Repository: r.Repository.WithTx(tx),
		db:         crud.BindTx(r.db, tx),
		table:      r.table,
	}
}

func (r *repository) FindPending(ctx context.Context) ([]PendingOrganization, error) {
	rows := []PendingOrganization{}
	err := r.db.WithContext(ctx).
		Table(r.table.Name+" AS o").
		Select(`o.*, m.performed_by, m.ip_address, m.device_type, m.operating_system,
			m.browser, m.geolocation, m.created_at AS recorded_at`).
		Joins("LEFT JOIN organization_metadata m ON m.organization_id = o.id AND m.action = ?", MetadataActionCreated).
		Where("o.account_status = ?", StatusPendingApproval).
		Order("o.id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Approve(ctx context.Context, id int64) (*Organization, error) {
	var org Organization
	res := r.db.WithContext(ctx).
		Table(r.table.Name).
		Model(&org).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"account_status": StatusApproved,
			"updated_at":     gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &org, nil
}
