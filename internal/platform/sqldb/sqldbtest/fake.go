// Package sqldbtest provides in-memory fakes of sqldb.DB for repository tests.
package sqldbtest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	"kokko-factory-service/internal/platform/sqldb"
)

// Result implements sql.Result.
type Result struct {
	Affected int64
}

func (r Result) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (r Result) RowsAffected() (int64, error) {
	return r.Affected, nil
}

// Rows replays fixed rows. Each value is assigned to the matching Scan
// destination, so values must have the exact type the destination points to.
type Rows struct {
	Values [][]any
	Error  error

	i      int
	closed bool
}

func (r *Rows) Next() bool {
	return r.i < len(r.Values)
}

func (r *Rows) Scan(dest ...any) error {
	if r.i >= len(r.Values) {
		return errors.New("no more rows")
	}
	row := r.Values[r.i]
	if len(dest) != len(row) {
		return fmt.Errorf("dest length mismatch: got %d, row has %d", len(dest), len(row))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("dest %d is not a pointer", i)
		}
		v := reflect.ValueOf(row[i])
		if !v.IsValid() {
			dv.Elem().Set(reflect.Zero(dv.Elem().Type()))
			continue
		}
		if !v.Type().AssignableTo(dv.Elem().Type()) {
			return fmt.Errorf("column %d: cannot assign %s to %s", i, v.Type(), dv.Elem().Type())
		}
		dv.Elem().Set(v)
	}
	r.i++
	return nil
}

func (r *Rows) Err() error {
	return r.Error
}

func (r *Rows) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether the repository released the rows.
func (r *Rows) Closed() bool {
	return r.closed
}

// Call records one statement sent to the fake.
type Call struct {
	Query string
	Args  []any
}

// DB is a scriptable sqldb.DB. Unset hooks succeed with one affected row
// and no result rows.
type DB struct {
	ExecFn  func(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryFn func(ctx context.Context, query string, args ...any) (sqldb.RowScanner, error)

	Execs   []Call
	Queries []Call
}

var _ sqldb.DB = (*DB)(nil)

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	d.Execs = append(d.Execs, Call{Query: query, Args: args})
	if d.ExecFn != nil {
		return d.ExecFn(ctx, query, args...)
	}
	return Result{Affected: 1}, nil
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (sqldb.RowScanner, error) {
	d.Queries = append(d.Queries, Call{Query: query, Args: args})
	if d.QueryFn != nil {
		return d.QueryFn(ctx, query, args...)
	}
	return &Rows{}, nil
}

// LastExec returns the most recent Exec call.
func (d *DB) LastExec() Call {
	if len(d.Execs) == 0 {
		return Call{}
	}
	return d.Execs[len(d.Execs)-1]
}
