package brokerlink

import (
	"context"
	"errors"

	"github.com/mmnete/bimasoft-backend/internal/organization"
	"gorm.io/gorm"
)

//go:generate mockgen -source=brokerlink_repo.go -destination=mock/brokerlink_repo_mock.go -package=mock

type Repository interface {
	// FindRelation returns nil, nil when the pair is not linked.
	FindRelation(ctx context.Context, brokerID, companyID int64) (*Relation, error)
	Add(ctx context.Context, brokerID, companyID int64) error
	// Remove reports whether a link was deleted.
	Remove(ctx context.Context, brokerID, companyID int64) (bool, error)
	FindCompaniesForBroker(ctx context.Context, brokerID int64) ([]organization.Organization, error)
	FindBrokersForCompany(ctx context.Context, companyID int64) ([]organization.Organization, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindRelation(ctx context.Context, brokerID, companyID int64) (*Relation, error) {
	var rel Relation
	err := r.db.WithContext(ctx).
		Table(linkTable).
		Where("broker_id = ? AND company_id = ?", brokerID, companyID).
		Take(&rel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *repository) Add(ctx context.Context, brokerID, companyID int64) error {
	return r.db.WithContext(ctx).
		Table(linkTable).
		Create(&Relation{BrokerID: brokerID, CompanyID: companyID}).Error
}

func (r *repository) Remove(ctx context.Context, brokerID, companyID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Table(linkTable).
		Where("broker_id = ? AND company_id = ?", brokerID, companyID).
		Delete(&Relation{})
	return res.RowsAffected > 0, res.Error
}

// FindCompaniesForBroker reads through the company view so only companies
// come back even if the link table holds a stray id.
func (r *repository) FindCompaniesForBroker(ctx context.Context, brokerID int64) ([]organization.Organization, error) {
	rows := []organization.Organization{}
	err := r.db.WithContext(ctx).
		Table(organization.TableFor(organization.TypeCompany).Name+" AS o").
		Select("o.*").
		Joins("JOIN "+linkTable+" AS bc ON bc.company_id = o.id").
		Where("bc.broker_id = ?", brokerID).
		Order("o.id").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindBrokersForCompany(ctx context.Context, companyID int64) ([]organization.Organization, error) {
	rows := []organization.Organization{}
	err := r.db.WithContext(ctx).
		Table(organization.TableFor(organization.TypeBroker).Name+" AS o").
		Select("o.*").
		Joins("JOIN "+linkTable+" AS bc ON bc.broker_id = o.id").
		Where("bc.company_id = ?", companyID).
		Order("o.id").
		Find(&rows).Error
	return rows, err
}
