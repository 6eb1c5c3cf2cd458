package repository

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB is an in-memory stand-in for the pool. It understands exactly the
// statements built in statement.go and stores NULL as a nil value.
type fakeDB struct {
	tables map[string]map[string]map[string]any
	calls  []fakeCall
	err    error
}

type fakeCall struct {
	sql  string
	args []any
}

func newFakeDB() *fakeDB {
	return &fakeDB{tables: make(map[string]map[string]map[string]any)}
}

var (
	insertRe = regexp.MustCompile(`^INSERT INTO (\w+) \(([^)]*)\) VALUES \(([^)]*)\)$`)
	updateRe = regexp.MustCompile(`^UPDATE (\w+) SET (.*) WHERE (\w+) = \$1$`)
	deleteRe = regexp.MustCompile(`^DELETE FROM (\w+) WHERE (\w+) = \$1$`)
	selectRe = regexp.MustCompile(`^SELECT (.*) FROM (\w+)(?: WHERE (\w+) = \$1)?(?: ORDER BY (\w+))?$`)
)

func (f *fakeDB) table(name string) map[string]map[string]any {
	t, ok := f.tables[name]
	if !ok {
		t = make(map[string]map[string]any)
		f.tables[name] = t
	}
	return t
}

func arg(args []any, placeholder string) (any, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(placeholder), "$"))
	if err != nil || n < 1 || n > len(args) {
		return nil, fmt.Errorf("bad placeholder %q", placeholder)
	}
	return args[n-1], nil
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, fakeCall{sql: sql, args: args})
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}

	if m := insertRe.FindStringSubmatch(sql); m != nil {
		cols := strings.Split(m[2], ", ")
		phs := strings.Split(m[3], ", ")
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			v, err := arg(args, phs[i])
			if err != nil {
				return pgconn.CommandTag{}, err
			}
			row[col] = v
		}
		t := f.table(m[1])
		key := fmt.Sprint(row[cols[0]])
		if _, exists := t[key]; exists {
			return pgconn.CommandTag{}, &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		}
		t[key] = row
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}

	if m := updateRe.FindStringSubmatch(sql); m != nil {
		key := fmt.Sprint(args[0])
		row, ok := f.table(m[1])[key]
		if !ok {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		}
		for _, set := range strings.Split(m[2], ", ") {
			parts := strings.SplitN(set, " = ", 2)
			if parts[1] == "NULL" {
				row[parts[0]] = nil
				continue
			}
			v, err := arg(args, parts[1])
			if err != nil {
				return pgconn.CommandTag{}, err
			}
			row[parts[0]] = v
		}
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}

	if m := deleteRe.FindStringSubmatch(sql); m != nil {
		t := f.table(m[1])
		key := fmt.Sprint(args[0])
		if _, ok := t[key]; !ok {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		delete(t, key)
		return pgconn.NewCommandTag("DELETE 1"), nil
	}

	return pgconn.CommandTag{}, fmt.Errorf("fakeDB: unsupported statement %q", sql)
}

func (f *fakeDB) selectRows(sql string, args []any) ([][]any, error) {
	m := selectRe.FindStringSubmatch(sql)
	if m == nil {
		return nil, fmt.Errorf("fakeDB: unsupported query %q", sql)
	}
	cols := strings.Split(m[1], ", ")
	t := f.table(m[2])

	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out [][]any
	for _, k := range keys {
		row := t[k]
		if m[3] != "" && fmt.Sprint(row[m[3]]) != fmt.Sprint(args[0]) {
			continue
		}
		values := make([]any, len(cols))
		for i, col := range cols {
			values[i] = row[col]
		}
		out = append(out, values)
	}
	return out, nil
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, fakeCall{sql: sql, args: args})
	if f.err != nil {
		return nil, f.err
	}
	rows, err := f.selectRows(sql, args)
	if err != nil {
		return nil, err
	}
	return &fakeRows{rows: rows, pos: -1}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.calls = append(f.calls, fakeCall{sql: sql, args: args})
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	rows, err := f.selectRows(sql, args)
	if err != nil {
		return fakeRow{err: err}
	}
	if len(rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: rows[0]}
}

func (f *fakeDB) lastCall() fakeCall {
	if len(f.calls) == 0 {
		return fakeCall{}
	}
	return f.calls[len(f.calls)-1]
}

func scanValues(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			s, ok := values[i].(string)
			if !ok {
				return fmt.Errorf("scan column %d: cannot scan %v into *string", i, values[i])
			}
			*p = s
		case **string:
			if values[i] == nil {
				*p = nil
				continue
			}
			s, ok := values[i].(string)
			if !ok {
				return fmt.Errorf("scan column %d: cannot scan %v into **string", i, values[i])
			}
			*p = &s
		default:
			return fmt.Errorf("scan column %d: unsupported target %T", i, d)
		}
	}
	return nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanValues(r.values, dest)
}

type fakeRows struct {
	rows [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanValues(r.rows[r.pos], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos], nil
}
