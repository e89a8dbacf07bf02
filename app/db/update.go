package database

import (
	"fmt"
	"strings"
)

// UpdateSet collects column assignments for a partial update or an insert. Only fields that
// were provided by the caller are added, so columns not mentioned keep their stored (or
// default) value.
type UpdateSet struct {
	cols  []string
	exprs []string
	args  []any
}

// Set adds col when v is non-nil.
func Set[T any](u *UpdateSet, col string, v *T) {
	if v == nil {
		return
	}
	u.SetValue(col, *v)
}

// SetValue adds col unconditionally.
func (u *UpdateSet) SetValue(col string, v any) {
	u.args = append(u.args, v)
	u.cols = append(u.cols, col)
	u.exprs = append(u.exprs, fmt.Sprintf("$%d", len(u.args)))
}

// SetRaw assigns an SQL expression that takes no argument, e.g. SetRaw("updated_at", "now()").
func (u *UpdateSet) SetRaw(col, expr string) {
	u.cols = append(u.cols, col)
	u.exprs = append(u.exprs, expr)
}

func (u *UpdateSet) Len() int { return len(u.cols) }

// Build returns the UPDATE statement and its arguments. The id is bound last. With returning
// set, a RETURNING clause is appended. Build fails when no column was added.
func (u *UpdateSet) Build(table, idCol string, id any, returning string) (string, []any, error) {
	if len(u.cols) == 0 {
		return "", nil, fmt.Errorf("no fields to update on %s", table)
	}
	clauses := make([]string, len(u.cols))
	for i, col := range u.cols {
		clauses[i] = col + " = " + u.exprs[i]
	}
	args := append(append([]any{}, u.args...), id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(clauses, ", "), idCol, len(args))
	if returning != "" {
		query += " RETURNING " + returning
	}
	return query, args, nil
}

// BuildInsert returns the INSERT statement for the collected columns. An empty set inserts a
// row of defaults.
func (u *UpdateSet) BuildInsert(table, returning string) (string, []any) {
	var query string
	if len(u.cols) == 0 {
		query = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", table)
	} else {
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			table, strings.Join(u.cols, ", "), strings.Join(u.exprs, ", "))
	}
	if returning != "" {
		query += " RETURNING " + returning
	}
	return query, append([]any{}, u.args...)
}

// Filter collects equality conditions for list queries.
type Filter struct {
	conds []string
	args  []any
}

// Eq adds "col = v" when v is non-nil.
func Eq[T any](f *Filter, col string, v *T) {
	if v == nil {
		return
	}
	f.args = append(f.args, *v)
	f.conds = append(f.conds, fmt.Sprintf("%s = $%d", col, len(f.args)))
}

// Where returns the WHERE clause (with a leading space) or "" when there are no conditions.
func (f *Filter) Where() (string, []any) {
	if f == nil || len(f.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(f.conds, " AND "), append([]any{}, f.args...)
}
