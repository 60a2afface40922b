// Package sql loads database rows into AnyOf containers using database/sql.
// A row becomes whichever concrete type its scanner chooses, so a single
// query can yield a mix of concrete types behind one Base interface.
package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/samee/any-of/anyof/core"
)

// ErrUnknownKind is wrapped by the error ByKind returns for a row whose kind
// has no registered decoder.
var ErrUnknownKind = errors.New("unknown kind")

// Scanner is a function that scans a row into a container.
type Scanner[Base any] func(*sql.Rows) (*core.AnyOf[Base], error)

// Query executes a query and scans every row into a container. The first
// scan error stops the query and is returned along with the rows scanned so
// far.
func Query[Base any](ctx context.Context, db *sql.DB, query string, scanner Scanner[Base], args ...any) ([]*core.AnyOf[Base], error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*core.AnyOf[Base]
	for rows.Next() {
		c, err := scanner(rows)
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// QueryRow executes a query expecting a single row and scans it into a
// container. sql.ErrNoRows is returned unchanged when there is no row.
func QueryRow[Base any](ctx context.Context, db *sql.DB, query string, scanner func(*sql.Row) (*core.AnyOf[Base], error), args ...any) (*core.AnyOf[Base], error) {
	row := db.QueryRowContext(ctx, query, args...)
	return scanner(row)
}

// Decoder builds a container from the columns of one row that follow the
// kind column. TEXT columns arrive as string.
type Decoder[Base any] func(cols []any) (*core.AnyOf[Base], error)

// ByKind returns a Scanner that reads the first column as a kind
// discriminator and hands the remaining columns to the decoder registered
// for that kind.
func ByKind[Base any](decoders map[string]Decoder[Base]) Scanner[Base] {
	return func(rows *sql.Rows) (*core.AnyOf[Base], error) {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		if len(cols) == 0 {
			return nil, errors.New("query returned no columns")
		}
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		kind := String(values[0])
		decode, ok := decoders[kind]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
		}
		c, err := decode(values[1:])
		if err != nil {
			return nil, fmt.Errorf("decode %q: %w", kind, err)
		}
		return c, nil
	}
}

// String converts a scanned column value to a string.
func String(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Int64 converts a scanned column value to an int64. A REAL value must be
// integral and in range; it is never truncated.
func Int64(v any) (int64, error) {
	switch val := v.(type) {
	case int64:
		return val, nil
	case float64:
		if val != math.Trunc(val) || val < math.MinInt64 || val >= math.MaxInt64 {
			return 0, fmt.Errorf("%v is not an int64", val)
		}
		return int64(val), nil
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.ParseInt(val, 10, 64)
	case []byte:
		return strconv.ParseInt(string(val), 10, 64)
	case nil:
		return 0, errors.New("NULL is not an integer")
	default:
		return 0, fmt.Errorf("cannot convert %T to int64", v)
	}
}
