// Small helpers for working with pgx at the repository level.
package db

import (
	"context"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DbConn is the subset of pgxpool.Pool/pgx.Tx the data layer needs. Passing
// a pgx.Tx here lets a caller run checks and writes in one transaction.
type DbConn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// GetCols returns the database columns of a struct based on its db tags.
// Fields tagged db:"-" (parsed internally) are skipped.
func GetCols(s any) []string {
	t := reflect.TypeOf(s)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var cols []string

	for _, f := range reflect.VisibleFields(t) {
		tag := f.Tag.Get("db")

		if tag == "" || tag == "-" {
			continue
		}

		cols = append(cols, tag)
	}

	return cols
}
