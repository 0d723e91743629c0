package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/questions/pkg/types"
)

// queryRows runs a parameterized query and returns every result row as a
// column-keyed map holding the driver's native values. The caller's table
// and op name the query in logs and errors.
func (b *Backend) queryRows(table, op, query string, args ...any) ([]types.Row, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Queryx(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", table, op, err)
	}
	defer rows.Close()

	var result []types.Row
	for rows.Next() {
		row := make(types.Row)
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("%s %s: scanning row: %w", table, op, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s %s: %w", table, op, err)
	}

	b.log.Debug().
		Str("table", table).
		Str("op", op).
		Int("rows", len(result)).
		Msg("query")
	return result, nil
}

// fromRowFunc converts one result row into a record.
type fromRowFunc[T any] func(types.Row) (T, error)

// findOne returns the first row of the query converted by fromRow, or nil
// when the query matches nothing.
func findOne[T any](b *Backend, table, op string, fromRow fromRowFunc[T], query string, args ...any) (*T, error) {
	rows, err := b.queryRows(table, op, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	rec, err := fromRow(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", table, op, err)
	}
	return &rec, nil
}

// findMany converts every row of the query. The result is never nil.
func findMany[T any](b *Backend, table, op string, fromRow fromRowFunc[T], query string, args ...any) ([]T, error) {
	rows, err := b.queryRows(table, op, query, args...)
	if err != nil {
		return nil, err
	}
	result := make([]T, 0, len(rows))
	for _, row := range rows {
		rec, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", table, op, err)
		}
		result = append(result, rec)
	}
	return result, nil
}
