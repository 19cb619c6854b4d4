package auditlog

import (
	"context"
	"database/sql"

	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auditlog_repo.go -destination=mock/auditlog_repo_mock.go -package=mock

// Repository is append-only: there is no Update or Delete.
type Repository interface {
	Create(ctx context.Context, log *AuditLog) error
	FindAll(ctx context.Context) ([]AuditLog, error)
	FindOne(ctx context.Context, id int64) (*AuditLog, error)
	FindByEntity(ctx context.Context, entityID int64, entityType string) ([]AuditLog, error)
}

type MetadataRepository interface {
	WithTx(tx *sql.Tx) MetadataRepository
	Create(ctx context.Context, meta *OrganizationMetadata) error
	FindByOrganization(ctx context.Context, organizationID int64) ([]OrganizationMetadata, error)
}

type repository struct {
	base crud.Repository[AuditLog]
	db   *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{base: crud.NewRepository[AuditLog](db, auditTable), db: db}
}

func (r *repository) Create(ctx context.Context, log *AuditLog) error {
	return r.base.Create(ctx, log)
}

func (r *repository) FindAll(ctx context.Context) ([]AuditLog, error) {
	return r.base.FindAll(ctx)
}

func (r *repository) FindOne(ctx context.Context, id int64) (*AuditLog, error) {
	return r.base.FindOne(ctx, id)
}

func (r *repository) FindByEntity(ctx context.Context, entityID int64, entityType string) ([]AuditLog, error) {
	logs := []AuditLog{}
	err := r.db.WithContext(ctx).
		Table(auditTable.Name).
		Where("insurance_entity_id = ? AND entity_type = ?", entityID, entityType).
		Order("created_at DESC, id DESC").
		Find(&logs).Error
	return logs, err
}

type metadataRepository struct {
	base crud.Repository[OrganizationMetadata]
}

func NewMetadataRepository(db *gorm.DB) MetadataRepository {
	return &metadataRepository{base: crud.NewRepository[OrganizationMetadata](db, metadataTable)}
}

func (r *metadataRepository) WithTx(tx *sql.Tx) MetadataRepository {
	return &metadataRepository{base: r.base.WithTx(tx)}
}

func (r *metadataRepository) Create(ctx context.Context, meta *OrganizationMetadata) error {
	return r.base.Create(ctx, meta)
}

func (r *metadataRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]OrganizationMetadata, error) {
	return r.base.FindBy(ctx, "organizationId", organizationID)
}
