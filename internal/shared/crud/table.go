package crud

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoFieldsToUpdate is returned by Update when the patch is empty. No query
// is issued in that case.
var ErrNoFieldsToUpdate = errors.New("No fields to update")

// InvalidFieldError reports a key that is not in the table's allow-list.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("Invalid field: %s", e.Field)
}

// Table describes a table (or updatable view) for the generic repository.
// Columns is the allow-list from API field name to column name. Only keys
// listed there can be written by Update or filtered by FindBy.
type Table struct {
	Name          string
	Columns       map[string]string
	SearchColumns []string
	UniqueColumns []string
	// Timestamps makes Update bump updated_at.
	Timestamps bool
}

// Column resolves an API field name to its column.
func (t Table) Column(key string) (string, error) {
	col, ok := t.Columns[key]
	if !ok {
		return "", &InvalidFieldError{Field: key}
	}
	return col, nil
}

// Resolve maps a patch keyed by API field names to one keyed by columns.
// Keys are checked in sorted order so the reported invalid field is stable.
func (t Table) Resolve(fields map[string]any) (map[string]any, error) {
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(fields))
	for _, k := range keys {
		col, err := t.Column(k)
		if err != nil {
			return nil, err
		}
		out[col] = fields[k]
	}
	return out, nil
}

func (t Table) isUnique(column string) bool {
	for _, c := range t.UniqueColumns {
		if c == column {
			return true
		}
	}
	return false
}
