package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=customer_repo.go -destination=mock/customer_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Customer) error
	FindAll(ctx context.Context) ([]Customer, error)
	FindOne(ctx context.Context, id int64) (*Customer, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*Customer, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]Customer, error)
	FindByType(ctx context.Context, customerType string) ([]Customer, error)
	FindByTin(ctx context.Context, tin string) (*Customer, error)
	// FindDuplicate returns the first customer sharing the legal name or TIN,
	// or whose individual record carries nationalID. Empty values never match.
	FindDuplicate(ctx context.Context, legalName, tin, nationalID string, excludeID int64) (*Customer, error)
	FindByOrganization(ctx context.Context, organizationID int64) ([]Customer, error)
}

type IndividualRepository interface {
	WithTx(tx *sql.Tx) IndividualRepository
	Create(ctx context.Context, ic *IndividualCustomer) error
	FindAll(ctx context.Context) ([]IndividualCustomer, error)
	FindOne(ctx context.Context, id int64) (*IndividualCustomer, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*IndividualCustomer, error)
	Delete(ctx context.Context, id int64) error
	FindByCustomerID(ctx context.Context, customerID int64) (*IndividualCustomer, error)
	FindByNationalID(ctx context.Context, nationalID string, excludeID int64) (*IndividualCustomer, error)
}

type CorporateRepository interface {
	WithTx(tx *sql.Tx) CorporateRepository
	Create(ctx context.Context, cc *CorporateCustomer) error
	FindAll(ctx context.Context) ([]CorporateCustomer, error)
	FindOne(ctx context.Context, id int64) (*CorporateCustomer, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*CorporateCustomer, error)
	Delete(ctx context.Context, id int64) error
	FindByCustomerID(ctx context.Context, customerID int64) (*CorporateCustomer, error)
	FindByBrela(ctx context.Context, brela string, excludeID int64) (*CorporateCustomer, error)
}

type LinkRepository interface {
	WithTx(tx *sql.Tx) LinkRepository
	// Link is idempotent: linking an existing pair is a no-op.
	Link(ctx context.Context, customerID, organizationID int64) error
	// Unlink reports whether a link was removed.
	Unlink(ctx context.Context, customerID, organizationID int64) (bool, error)
	FindOrganizations(ctx context.Context, customerID int64) ([]int64, error)
}

type repository struct {
	crud.Repository[Customer]
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{Repository: crud.NewRepository[Customer](db, customerTable), db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{Repository: r.Repository.WithTx(tx), db: crud.BindTx(r.db, tx)}
}

func (r *repository) FindByType(ctx context.Context, customerType string) ([]Customer, error) {
	return r.FindBy(ctx, "customerType", customerType)
}

func (r *repository) FindByTin(ctx context.Context, tin string) (*Customer, error) {
	var c Customer
	err := r.db.WithContext(ctx).Table(customerTable.Name).Where("tin_number = ?", tin).Order("id").Take(&c).Error
	return found(&c, err)
}

func (r *repository) FindDuplicate(ctx context.Context, legalName, tin, nationalID string, excludeID int64) (*Customer, error) {
	if legalName == "" && tin == "" && nationalID == "" {
		return nil, nil
	}

	q := r.db.WithContext(ctx).
		Table(customerTable.Name+" AS c").
		Select("c.*").
		Joins("LEFT JOIN "+individualTable.Name+" AS i ON i.customer_id = c.id").
		Where("(c.legal_name = NULLIF(?, '') OR c.tin_number = NULLIF(?, '') OR i.national_id = NULLIF(?, ''))",
			legalName, tin, nationalID)
	if excludeID > 0 {
		q = q.Where("c.id <> ?", excludeID)
	}

	var c Customer
	err := q.Order("c.id").Take(&c).Error
	return found(&c, err)
}

func (r *repository) FindByOrganization(ctx context.Context, organizationID int64) ([]Customer, error) {
	rows := []Customer{}
	err := r.db.WithContext(ctx).
		Table(customerTable.Name+" AS c").
		Select("c.*").
		Joins("JOIN "+linkTable+" AS co ON co.customer_id = c.id").
		Where("co.organization_id = ?", organizationID).
		Order("c.id").
		Find(&rows).Error
	return rows, err
}

type individualRepository struct {
	crud.Repository[IndividualCustomer]
	db *gorm.DB
}

func NewIndividualRepository(db *gorm.DB) IndividualRepository {
	return &individualRepository{Repository: crud.NewRepository[IndividualCustomer](db, individualTable), db: db}
}

func (r *individualRepository) WithTx(tx *sql.Tx) IndividualRepository {
	return &individualRepository{Repository: r.Repository.WithTx(tx), db: crud.BindTx(r.db, tx)}
}

func (r *individualRepository) FindByCustomerID(ctx context.Context, customerID int64) (*IndividualCustomer, error) {
	var ic IndividualCustomer
	err := r.db.WithContext(ctx).Table(individualTable.Name).Where("customer_id = ?", customerID).Take(&ic).Error
	return found(&ic, err)
}

func (r *individualRepository) FindByNationalID(ctx context.Context, nationalID string, excludeID int64) (*IndividualCustomer, error) {
	q := r.db.WithContext(ctx).Table(individualTable.Name).Where("national_id = ?", nationalID)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var ic IndividualCustomer
	err := q.Order("id").Take(&ic).Error
	return found(&ic, err)
}

type corporateRepository struct {
	crud.Repository[CorporateCustomer]
	db *gorm.DB
}

func NewCorporateRepository(db *gorm.DB) CorporateRepository {
	return &corporateRepository{Repository: crud.NewRepository[CorporateCustomer](db, corporateTable), db: db}
}

func (r *corporateRepository) WithTx(tx *sql.Tx) CorporateRepository {
	return &corporateRepository{Repository: r.Repository.WithTx(tx), db: crud.BindTx(r.db, tx)}
}

func (r *corporateRepository) FindByCustomerID(ctx context.Context, customerID int64) (*CorporateCustomer, error) {
	var cc CorporateCustomer
	err := r.db.WithContext(ctx).Table(corporateTable.Name).Where("customer_id = ?", customerID).Take(&cc).Error
	return found(&cc, err)
}

func (r *corporateRepository) FindByBrela(ctx context.Context, brela string, excludeID int64) (*CorporateCustomer, error) {
	q := r.db.WithContext(ctx).Table(corporateTable.Name).Where("brela_registration_number = ?", brela)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var cc CorporateCustomer
	err := q.Order("id").Take(&cc).Error
	return found(&cc, err)
}

type linkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) WithTx(tx *sql.Tx) LinkRepository {
	return &linkRepository{db: crud.BindTx(r.db, tx)}
}

func (r *linkRepository) Link(ctx context.Context, customerID, organizationID int64) error {
	return r.db.WithContext(ctx).
		Table(linkTable).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Link{CustomerID: customerID, OrganizationID: organizationID}).Error
}

func (r *linkRepository) Unlink(ctx context.Context, customerID, organizationID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Table(linkTable).
		Where("customer_id = ? AND organization_id = ?", customerID, organizationID).
		Delete(&Link{})
	return res.RowsAffected > 0, res.Error
}

func (r *linkRepository) FindOrganizations(ctx context.Context, customerID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Table(linkTable).
		Where("customer_id = ?", customerID).
		Order("organization_id").
		Pluck("organization_id", &ids).Error
	return ids, err
}

func found[T any](row *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
