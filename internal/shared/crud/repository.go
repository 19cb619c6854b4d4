package crud

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Repository is the uniform contract shared by every entity table.
type Repository[T any] interface {
	WithTx(tx *sql.Tx) Repository[T]
	Create(ctx context.Context, entity *T) error
	FindAll(ctx context.Context) ([]T, error)
	// FindOne returns nil, nil when the row does not exist.
	FindOne(ctx context.Context, id int64) (*T, error)
	// Update returns nil, nil when the row does not exist.
	Update(ctx context.Context, id int64, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]T, error)
	FindBy(ctx context.Context, field string, value any) ([]T, error)
	FindByUniqueFields(ctx context.Context, values map[string]any, excludeID int64) (*T, error)
}

type repository[T any] struct {
	db    *gorm.DB
	table Table
}

func NewRepository[T any](db *gorm.DB, table Table) Repository[T] {
	return &repository[T]{db: db, table: table}
}

// WithTx binds the repository to a database/sql transaction so gorm
// statements join work started by the service layer.
func (r *repository[T]) WithTx(tx *sql.Tx) Repository[T] {
	return &repository[T]{db: BindTx(r.db, tx), table: r.table}
}

// BindTx returns a gorm handle that executes on tx. A nil tx returns db.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	scoped := db.Session(&gorm.Session{Context: context.Background(), NewDB: true})
	scoped.Statement.ConnPool = tx
	return scoped
}

func (r *repository[T]) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table.Name)
}

func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.query(ctx).Create(entity).Error
}

func (r *repository[T]) FindAll(ctx context.Context) ([]T, error) {
	var rows []T
	err := r.query(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *repository[T]) FindOne(ctx context.Context, id int64) (*T, error) {
	var row T
	err := r.query(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository[T]) Update(ctx context.Context, id int64, fields map[string]any) (*T, error) {
	cols, err := r.table.Resolve(fields)
	if err != nil {
		return nil, err
	}
	if r.table.Timestamps {
		cols["updated_at"] = gorm.Expr("NOW()")
	}

	res := r.query(ctx).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindOne(ctx, id)
}

// Delete is a hard delete. Deleting a missing id is not an error.
func (r *repository[T]) Delete(ctx context.Context, id int64) error {
	var model T
	return r.query(ctx).Where("id = ?", id).Delete(&model).Error
}

func (r *repository[T]) Search(ctx context.Context, query string) ([]T, error) {
	rows := []T{}
	if len(r.table.SearchColumns) == 0 {
		return rows, nil
	}

	pattern := "%" + escapeLike(query) + "%"
	conds := make([]string, len(r.table.SearchColumns))
	args := make([]any, len(r.table.SearchColumns))
	for i, col := range r.table.SearchColumns {
		conds[i] = col + " ILIKE ?"
		args[i] = pattern
	}

	err := r.query(ctx).Where(strings.Join(conds, " OR "), args...).Order("id").Find(&rows).Error
	return rows, err
}

func (r *repository[T]) FindBy(ctx context.Context, field string, value any) ([]T, error) {
	col, err := r.table.Column(field)
	if err != nil {
		return nil, err
	}

	rows := []T{}
	err = r.query(ctx).Where(col+" = ?", value).Order("id").Find(&rows).Error
	return rows, err
}

// FindByUniqueFields returns the first row sharing any of the given unique
// column values. Empty values are ignored. excludeID > 0 skips that row,
// which lets updates re-check uniqueness against everyone else.
func (r *repository[T]) FindByUniqueFields(ctx context.Context, values map[string]any, excludeID int64) (*T, error) {
	cols := make([]string, 0, len(values))
	for col, v := range values {
		if !r.table.isUnique(col) {
			return nil, &InvalidFieldError{Field: col}
		}
		if isEmpty(v) {
			continue
		}
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return nil, nil
	}
	sort.Strings(cols)

	conds := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		conds[i] = col + " = ?"
		args[i] = values[col]
	}

	// gorm parenthesizes the OR group once a second condition is added.
	q := r.query(ctx).Where(strings.Join(conds, " OR "), args...)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var row T
	err := q.Order("id").Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case *string:
		return t == nil || strings.TrimSpace(*t) == ""
	default:
		return false
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
