package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// UpsertModel inserts model and, on a conflict over conflictColumn, overwrites
// every other mapped column with the incoming value. Columns listed in touch
// are set to NOW() on update.
func UpsertModel(table string, model any, conflictColumn string, touch ...string) (string, []any, error) {
	conflictColumn = strings.TrimSpace(conflictColumn)
	if conflictColumn == "" {
		return "", nil, fmt.Errorf("conflict column is required")
	}
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}

	sets := make([]string, 0, len(cols)+len(touch))
	found := false
	for _, col := range cols {
		if col == conflictColumn {
			found = true
			continue
		}
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	if !found {
		return "", nil, fmt.Errorf("conflict column %q is not mapped by the model", conflictColumn)
	}
	for _, col := range touch {
		sets = append(sets, col+" = NOW()")
	}

	suffix := "ON CONFLICT (" + conflictColumn + ") DO NOTHING"
	if len(sets) > 0 {
		suffix = "ON CONFLICT (" + conflictColumn + ") DO UPDATE SET " + strings.Join(sets, ", ")
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
