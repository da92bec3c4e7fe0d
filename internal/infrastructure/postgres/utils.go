package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es el subconjunto común de pgxpool.Pool y pgx.Tx que usan los
// adaptadores, para que un mismo repo funcione dentro o fuera de una tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// whereBuilder acumula condiciones AND con placeholders $n incrementales.
type whereBuilder struct {
	conds []string
	args  []any
}

// add agrega una condición cuyo marcador "$?" se numera con el siguiente $n.
func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.Replace(cond, "$?", "$"+strconv.Itoa(len(w.args)), 1))
}

// clause devuelve el fragmento WHERE (o cadena vacía) y los argumentos.
func (w *whereBuilder) clause() (string, []any) {
	if len(w.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(w.conds, " AND "), w.args
}

// andClause como clause pero para queries que ya tienen WHERE 1=1.
func (w *whereBuilder) andClause() (string, []any) {
	if len(w.conds) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(w.conds, " AND "), w.args
}
