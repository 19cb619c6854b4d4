package policy

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"gorm.io/gorm"
)

//go:generate mockgen -source=policy_repo.go -destination=mock/policy_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Policy) error
	FindAll(ctx context.Context) ([]Policy, error)
	FindOne(ctx context.Context, id int64) (*Policy, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*Policy, error)
	Delete(ctx context.Context, id int64) error
	// Search matches the policy number, the policy type or the customer's
	// legal name.
	Search(ctx context.Context, query string) ([]Policy, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]Policy, error)
	FindByEntity(ctx context.Context, entityID int64, entityType string) ([]Policy, error)
	FindByStatus(ctx context.Context, status string) ([]Policy, error)
	FindByPolicyNumber(ctx context.Context, number string, excludeID int64) (*Policy, error)
}

type MotorRepository interface {
	WithTx(tx *sql.Tx) MotorRepository
	Create(ctx context.Context, m *MotorPolicy) error
	FindAll(ctx context.Context) ([]MotorPolicy, error)
	FindOne(ctx context.Context, id int64) (*MotorPolicy, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*MotorPolicy, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]MotorPolicy, error)
	FindByPolicyID(ctx context.Context, policyID int64) (*MotorPolicy, error)
}

type repository struct {
	crud.Repository[Policy]
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{Repository: crud.NewRepository[Policy](db, policyTable), db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{Repository: r.Repository.WithTx(tx), db: crud.BindTx(r.db, tx)}
}

func (r *repository) Search(ctx context.Context, query string) ([]Policy, error) {
	pattern := "%" + query + "%"
	rows := []Policy{}
	err := r.db.WithContext(ctx).
		Table(policyTable.Name+" AS p").
		Select("p.*").
		Joins("JOIN customers AS c ON c.id = p.customer_id").
		Where("p.policy_number ILIKE ? OR p.policy_type ILIKE ? OR c.legal_name ILIKE ?", pattern, pattern, pattern).
		Order("p.id").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByCustomer(ctx context.Context, customerID int64) ([]Policy, error) {
	return r.FindBy(ctx, "customerId", customerID)
}

func (r *repository) FindByEntity(ctx context.Context, entityID int64, entityType string) ([]Policy, error) {
	rows := []Policy{}
	err := r.db.WithContext(ctx).
		Table(policyTable.Name).
		Where("insurance_entity_id = ? AND entity_type = ?", entityID, entityType).
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]Policy, error) {
	return r.FindBy(ctx, "status", status)
}

func (r *repository) FindByPolicyNumber(ctx context.Context, number string, excludeID int64) (*Policy, error) {
	q := r.db.WithContext(ctx).Table(policyTable.Name).Where("policy_number = ?", number)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var p Policy
	err := q.Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type motorRepository struct {
	crud.Repository[MotorPolicy]
	db *gorm.DB
}

func NewMotorRepository(db *gorm.DB) MotorRepository {
	return &motorRepository{Repository: crud.NewRepository[MotorPolicy](db, motorTable), db: db}
}

func (r *motorRepository) WithTx(tx *sql.Tx) MotorRepository {
	return &motorRepository{Repository: r.Repository.WithTx(tx), db: crud.BindTx(r.db, tx)}
}

func (r *motorRepository) FindByPolicyID(ctx context.Context, policyID int64) (*MotorPolicy, error) {
	var m MotorPolicy
	err := r.db.WithContext(ctx).Table(motorTable.Name).Where("policy_id = ?", policyID).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
