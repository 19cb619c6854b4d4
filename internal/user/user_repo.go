package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mmnete/bimasoft-backend/internal/shared/crud"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindAll(ctx context.Context) ([]User, error)
	FindOne(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*User, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]User, error)
	FindByUniqueFields(ctx context.Context, values map[string]any, excludeID int64) (*User, error)
	FindByRole(ctx context.Context, role string) ([]User, error)
	FindByInsuranceEntity(ctx context.Context, entityID int64, entityType string) ([]User, error)
	FindByIdentityUID(ctx context.Context, uid string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

type repository struct {
	crud.Repository[User]
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		Repository: crud.NewRepository[User](db, Table),
		db:         db,
	}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		Repository: r.Repository.WithTx(tx),
		db:         crud.BindTx(r.db, tx),
	}
}

func (r *repository) FindByRole(ctx context.Context, role string) ([]User, error) {
	return r.FindBy(ctx, "role", role)
}

func (r *repository) FindByInsuranceEntity(ctx context.Context, entityID int64, entityType string) ([]User, error) {
	users := []User{}
	err := r.db.WithContext(ctx).
		Table(Table.Name).
		Where("insurance_entity_id = ? AND entity_type = ?", entityID, entityType).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *repository) FindByIdentityUID(ctx context.Context, uid string) (*User, error) {
	return r.first(ctx, "identity_uid = ?", uid)
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *repository) first(ctx context.Context, cond string, arg any) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Table(Table.Name).Where(cond, arg).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
