package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	domainRepo "clinic-records/internal/domain/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUnknownVariant     = errors.New("unknown record variant")
	ErrEmptyDiscriminator = errors.New("extension value must not be empty")
	ErrNoRowsAffected     = domainRepo.ErrNoRowsAffected
)

// Querier is the part of *pgxpool.Pool the hierarchy repositories need.
// Each call on a pool borrows a connection for that one statement.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// encoded is a record flattened to a row: column names and values in the
// same order. The first column is always the key.
type encoded struct {
	columns []string
	values  []any
}

func (e *encoded) add(column string, value any) {
	e.columns = append(e.columns, column)
	e.values = append(e.values, value)
}

func placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = "$" + strconv.Itoa(i+1)
	}
	return strings.Join(ph, ", ")
}

func insertSQL(table string, e encoded) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(e.columns, ", "), placeholders(len(e.columns)))
}

// updateSQL writes every encoded column and sets each nullable column the
// record did not encode to NULL. Arguments are the encoded values as-is, so
// the key binds to $1.
func updateSQL(table string, e encoded, nullable []string) string {
	written := make(map[string]bool, len(e.columns))
	sets := make([]string, 0, len(e.columns)+len(nullable))
	for i, col := range e.columns {
		written[col] = true
		if i == 0 {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
	}
	for _, col := range nullable {
		if !written[col] {
			sets = append(sets, col+" = NULL")
		}
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1", table, strings.Join(sets, ", "), e.columns[0])
}

func selectSQL(table string, columns []string) string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), table)
}

func deleteSQL(table, key string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, key)
}
