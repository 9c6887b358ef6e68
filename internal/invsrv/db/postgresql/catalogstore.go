// Description: This file contains the shared CRUD core for the catalog tables.
// Every catalog table shares the coded-entry columns; per-table descriptors
// contribute the capability columns.
package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/db/dberror"
)

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

// codedColumns are the columns shared by all catalog tables, in insert order.
// created_at and updated_at are database-managed.
var codedColumns = []string{
	"id", "code", "display_name", "description", "is_active",
	"sort_order", "color_class", "icon_class", "properties",
}

type rowScanner interface {
	Scan(dest ...any) error
}

// dberrorFromScan maps a scan error to the matching dberror sentinel and logs
// everything except the not-found case.
func dberrorFromScan(ctx context.Context, err error, msg string) apperrors.Error {
	if errors.Is(err, sql.ErrNoRows) {
		return dberror.ErrNotFound.Msg(msg)
	}
	log.Ctx(ctx).Error().Err(err).Msg(msg)
	return dberror.ErrDatabase.Err(err)
}

// catalogTable describes one catalog table to the shared CRUD core.
// entry exposes the embedded coded-entry fields, extraCols lists the
// capability columns, and args/dest supply their values and scan targets
// in the same order.
type catalogTable[T any] struct {
	table     string
	label     string
	extraCols []string
	entry     func(*T) *catalog.CodedEntry
	args      func(*T) []any
	dest      func(*T) []any
}

func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

func (t catalogTable[T]) selectColumns() string {
	cols := append(append([]string{}, codedColumns...), t.extraCols...)
	cols = append(cols, "created_at", "updated_at")
	return strings.Join(cols, ", ")
}

func (t catalogTable[T]) codedArgs(e *catalog.CodedEntry) []any {
	return []any{
		e.ID, e.Code, e.DisplayName, e.Description, e.Active,
		e.SortOrder, e.ColorClass, e.IconClass, e.Properties,
	}
}

func (t catalogTable[T]) scanRow(row rowScanner, obj *T) error {
	e := t.entry(obj)
	dest := []any{
		&e.ID, &e.Code, &e.DisplayName, &e.Description, &e.Active,
		&e.SortOrder, &e.ColorClass, &e.IconClass, &e.Properties,
	}
	dest = append(dest, t.dest(obj)...)
	dest = append(dest, &e.CreatedAt, &e.UpdatedAt)
	return row.Scan(dest...)
}

// createCoded inserts a catalog row. A duplicate code maps to
// ErrAlreadyExists via the unique violation on the code column.
func createCoded[T any](ctx context.Context, conn *sql.Conn, t catalogTable[T], obj *T) apperrors.Error {
	e := t.entry(obj)
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Properties == nil {
		e.Properties = catalog.PropertyMap{}
	}

	cols := append(append([]string{}, codedColumns...), t.extraCols...)
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING created_at, updated_at;
	`, t.table, strings.Join(cols, ", "), placeholders(len(cols)))

	args := append(t.codedArgs(e), t.args(obj)...)
	err := conn.QueryRowContext(ctx, query, args...).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			log.Ctx(ctx).Info().Str("code", e.Code).Msgf("%s already exists", t.label)
			return dberror.ErrAlreadyExists.Msg(t.label + " already exists")
		}
		log.Ctx(ctx).Error().Err(err).Str("code", e.Code).Msgf("failed to insert %s", t.label)
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

func getCodedByID[T any](ctx context.Context, conn *sql.Conn, t catalogTable[T], id uuid.UUID) (*T, apperrors.Error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1;
	`, t.selectColumns(), t.table)

	obj := new(T)
	err := t.scanRow(conn.QueryRowContext(ctx, query, id), obj)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dberror.ErrNotFound.Msg(t.label + " not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msgf("failed to get %s", t.label)
		return nil, dberror.ErrDatabase.Err(err)
	}
	return obj, nil
}

// getCodedByCode looks a catalog row up by its code, case-insensitively.
func getCodedByCode[T any](ctx context.Context, conn *sql.Conn, t catalogTable[T], code string) (*T, apperrors.Error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE upper(code) = upper($1);
	`, t.selectColumns(), t.table)

	obj := new(T)
	err := t.scanRow(conn.QueryRowContext(ctx, query, code), obj)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dberror.ErrNotFound.Msg(t.label + " not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("code", code).Msgf("failed to get %s", t.label)
		return nil, dberror.ErrDatabase.Err(err)
	}
	return obj, nil
}

// listCoded returns catalog rows ordered by sort order then display name.
// With activeOnly set, inactive rows are excluded.
func listCoded[T any](ctx context.Context, conn *sql.Conn, t catalogTable[T], activeOnly bool) ([]*T, apperrors.Error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
	`, t.selectColumns(), t.table)
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY sort_order, display_name;"

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msgf("failed to list %s", t.label)
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var out []*T
	for rows.Next() {
		obj := new(T)
		if err := t.scanRow(rows, obj); err != nil {
			log.Ctx(ctx).Error().Err(err).Msgf("failed to scan %s", t.label)
			return nil, dberror.ErrDatabase.Err(err)
		}
		out = append(out, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return out, nil
}

// updateCoded rewrites all mutable columns of a catalog row. The code is
// immutable and identifies the row together with the id.
func updateCoded[T any](ctx context.Context, conn *sql.Conn, t catalogTable[T], obj *T) apperrors.Error {
	e := t.entry(obj)
	if e.Properties == nil {
		e.Properties = catalog.PropertyMap{}
	}

	mutable := append([]string{
		"display_name", "description", "is_active",
		"sort_order", "color_class", "icon_class", "properties",
	}, t.extraCols...)
	set := make([]string, len(mutable))
	args := []any{e.ID}
	for i, col := range mutable {
		set[i] = fmt.Sprintf("%s = $%d", col, i+2)
	}
	args = append(args,
		e.DisplayName, e.Description, e.Active,
		e.SortOrder, e.ColorClass, e.IconClass, e.Properties)
	args = append(args, t.args(obj)...)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s, updated_at = now()
		WHERE id = $1
		RETURNING updated_at;
	`, t.table, strings.Join(set, ", "))

	err := conn.QueryRowContext(ctx, query, args...).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dberror.ErrNotFound.Msg(t.label + " not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("code", e.Code).Msgf("failed to update %s", t.label)
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// deleteCoded removes a catalog row. A foreign key violation means the row
// is still referenced by inventory data and maps to ErrConflict.
func deleteCoded[T any](ctx context.Context, conn *sql.Conn, t catalogTable[T], id uuid.UUID) apperrors.Error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1;`, t.table)

	result, err := conn.ExecContext(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return dberror.ErrConflict.Msg(t.label + " is still referenced")
		}
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msgf("failed to delete %s", t.label)
		return dberror.ErrDatabase.Err(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return dberror.ErrNotFound.Msg(t.label + " not found")
	}
	return nil
}
