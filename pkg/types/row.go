package types

import (
	"errors"
	"fmt"
)

// Row is one result row keyed by column name. Values keep the type the
// driver produced for the column (int64 for INTEGER, string for TEXT).
type Row = map[string]any

// ID types. Foreign-key fields use the ID type of the table they point at.
type (
	UserID     int64
	QuestionID int64
	ReplyID    int64
	FollowID   int64
	LikeID     int64
)

// ErrColumnType is returned when a column holds a value of a kind its field
// cannot take, such as TEXT in an id column.
var ErrColumnType = errors.New("unexpected column type")

// rowReader reads typed columns from a Row and keeps the first kind
// mismatch. Missing or NULL columns read as the zero value.
type rowReader struct {
	row Row
	err error
}

func (r *rowReader) fail(col string, v any) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: column %s holds %T", ErrColumnType, col, v)
	}
}

func (r *rowReader) intCol(col string) int64 {
	switch v := r.row[col].(type) {
	case nil:
		return 0
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	default:
		r.fail(col, v)
		return 0
	}
}

// optIntCol reads a nullable integer column; nil for a missing or NULL column.
func (r *rowReader) optIntCol(col string) *int64 {
	if r.row[col] == nil {
		return nil
	}
	v := r.intCol(col)
	return &v
}

func (r *rowReader) textCol(col string) string {
	switch v := r.row[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		r.fail(col, v)
		return ""
	}
}
