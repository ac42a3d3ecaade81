// Package term implements the dictionary term repository using PostgreSQL.
// Queries are built with squirrel; listing order follows the list_order column.
package term

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/moderation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moderation-backend/internal/domain"
)

const table = "terms"

var columns = []string{
	"id", "term", "severity", "category", "definition", "examples", "date_added", "status",
}

// psql is a squirrel builder with PostgreSQL ($1) placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides term persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   txManager
}

// New creates a new term repository.
func New(pool *pgxpool.Pool, tx txManager) *Repo {
	return &Repo{pool: pool, tx: tx}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns terms matching the filter in display order.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error) {
	q := psql.Select(columns...).From(table).OrderBy("list_order DESC", "id DESC")

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"term": pattern},
			squirrel.ILike{"definition": pattern},
		})
	}
	if filter.HasCategory() {
		q = q.Where(squirrel.Eq{"category": string(filter.Category)})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": string(filter.Status)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list terms query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()

	terms := make([]domain.Term, 0)
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("list terms: %w", err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}

	return terms, nil
}

// GetByID returns a term or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Term, error) {
	sql, args, err := psql.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get term query: %w", err)
	}

	t, err := scanTerm(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "term", id)
	}
	return &t, nil
}

// Count returns the number of stored terms.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM terms`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count terms: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a term ahead of every existing one. The database assigns the ID.
func (r *Repo) Create(ctx context.Context, term *domain.Term) (*domain.Term, error) {
	sql, args, err := psql.Insert(table).
		Columns("term", "severity", "category", "definition", "examples", "date_added", "status", "list_order").
		Values(
			term.Term, string(term.Severity), string(term.Category), term.Definition,
			examplesOrEmpty(term.Examples), term.DateAdded, string(term.Status),
			squirrel.Expr("(SELECT GREATEST(COALESCE(MAX(list_order), 0), 0) + 1 FROM terms)"),
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create term query: %w", err)
	}

	created, err := scanTerm(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "term", 0)
	}
	return &created, nil
}

// Update applies the non-nil patch fields. Returns domain.ErrNotFound if the term does not exist.
func (r *Repo) Update(ctx context.Context, id int64, patch domain.TermPatch) (*domain.Term, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	q := psql.Update(table).Where(squirrel.Eq{"id": id})
	if patch.Term != nil {
		q = q.Set("term", *patch.Term)
	}
	if patch.Severity != nil {
		q = q.Set("severity", string(*patch.Severity))
	}
	if patch.Category != nil {
		q = q.Set("category", string(*patch.Category))
	}
	if patch.Definition != nil {
		q = q.Set("definition", *patch.Definition)
	}
	if patch.Examples != nil {
		q = q.Set("examples", examplesOrEmpty(*patch.Examples))
	}
	if patch.Status != nil {
		q = q.Set("status", string(*patch.Status))
	}

	sql, args, err := q.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update term query: %w", err)
	}

	updated, err := scanTerm(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "term", id)
	}
	return &updated, nil
}

// Delete removes a term. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete term query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "term", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// importBatchSize keeps one INSERT under PostgreSQL's 65535 bind parameter
// limit (nine per row).
const importBatchSize = 1000

// Import appends terms after every existing one, keeping their IDs, in a
// single transaction. Rows are inserted in batches of importBatchSize. The
// identity sequence is moved past the imported IDs.
func (r *Repo) Import(ctx context.Context, terms []domain.Term) (int, error) {
	if len(terms) == 0 {
		return 0, nil
	}

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		var base int64
		if err := q.QueryRow(ctx, `SELECT LEAST(COALESCE(MIN(list_order), 0), 0) FROM terms`).Scan(&base); err != nil {
			return fmt.Errorf("read list order: %w", err)
		}

		offset := 0
		for batch := range slices.Chunk(terms, importBatchSize) {
			insert := psql.Insert(table).
				Columns("id", "term", "severity", "category", "definition", "examples", "date_added", "status", "list_order")
			for i, t := range batch {
				insert = insert.Values(
					t.ID, t.Term, string(t.Severity), string(t.Category), t.Definition,
					examplesOrEmpty(t.Examples), dateOrNow(t.DateAdded), string(t.Status),
					base-int64(offset+i)-1,
				)
			}

			sql, args, err := insert.ToSql()
			if err != nil {
				return fmt.Errorf("build import query: %w", err)
			}
			if _, err := q.Exec(ctx, sql, args...); err != nil {
				return postgres.MapError(err, "term", batch[0].ID)
			}
			offset += len(batch)
		}

		_, err := q.Exec(ctx, `SELECT setval(
			pg_get_serial_sequence('terms', 'id'),
			GREATEST((SELECT MAX(id) FROM terms), nextval(pg_get_serial_sequence('terms', 'id'))))`)
		if err != nil {
			return fmt.Errorf("advance term id sequence: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(terms), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanTerm(row pgx.Row) (domain.Term, error) {
	var (
		t                          domain.Term
		severity, category, status string
		examples                   []string
	)
	if err := row.Scan(&t.ID, &t.Term, &severity, &category, &t.Definition, &examples, &t.DateAdded, &status); err != nil {
		return domain.Term{}, err
	}
	t.Severity = domain.Severity(severity)
	t.Category = domain.Category(category)
	t.Status = domain.TermStatus(status)
	t.Examples = examplesOrEmpty(examples)
	t.DateAdded = t.DateAdded.UTC()
	return t, nil
}

func examplesOrEmpty(examples []string) []string {
	if examples == nil {
		return []string{}
	}
	return examples
}

func dateOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

// escapeLike escapes LIKE wildcards using PostgreSQL's default backslash escape.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
