package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx operations the repositories need. It is
// satisfied by both *pgxpool.Pool and pgx.Tx, which is what makes WithTx work.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Postgres error codes checked across the repositories.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// buildListQuery appends WHERE conditions, ordering and pagination to a base
// SELECT. Results are always newest first. A limit of zero or less means no
// pagination: the full result set is returned.
func buildListQuery(baseQuery string, conditions []string, args *[]interface{}, offset, limit int) string {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(baseQuery)

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	if limit > 0 {
		*args = append(*args, limit)
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(*args)))
		*args = append(*args, offset)
		queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(*args)))
	}

	return queryBuilder.String()
}
