package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

const timeLayout = time.RFC3339Nano

var termColumns = []string{
	"id", "term", "severity", "category", "definition", "examples", "date_added", "status",
}

// TermRepo stores dictionary terms in SQLite. Examples are kept as a JSON
// array in a TEXT column; listing order follows list_order.
type TermRepo struct {
	db *sql.DB
}

// NewTermRepo creates a term repository over an opened database.
func NewTermRepo(db *sql.DB) *TermRepo {
	return &TermRepo{db: db}
}

// List returns terms matching the filter in display order.
// LOWER only folds ASCII in SQLite, so non-ASCII search is case-sensitive.
func (r *TermRepo) List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error) {
	q := squirrel.Select(termColumns...).From("terms").OrderBy("list_order DESC", "id DESC")

	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		q = q.Where(squirrel.Or{
			squirrel.Expr(`LOWER(term) LIKE ? ESCAPE '\'`, pattern),
			squirrel.Expr(`LOWER(definition) LIKE ? ESCAPE '\'`, pattern),
		})
	}
	if filter.HasCategory() {
		q = q.Where(squirrel.Eq{"category": string(filter.Category)})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": string(filter.Status)})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list terms query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query terms: %w", err)
	}
	defer func() { _ = rows.Close() }()

	terms := make([]domain.Term, 0)
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// GetByID returns a term or domain.ErrNotFound.
func (r *TermRepo) GetByID(ctx context.Context, id int64) (*domain.Term, error) {
	query, args, err := squirrel.Select(termColumns...).From("terms").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get term query: %w", err)
	}

	t, err := scanTerm(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "term", id)
	}
	return &t, nil
}

// Count returns the number of stored terms.
func (r *TermRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM terms`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count terms: %w", err)
	}
	return n, nil
}

// Create inserts a term ahead of every existing one and returns it with its new ID.
func (r *TermRepo) Create(ctx context.Context, term *domain.Term) (*domain.Term, error) {
	examples, err := encodeExamples(term.Examples)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.Insert("terms").
		Columns("term", "severity", "category", "definition", "examples", "date_added", "status", "list_order").
		Values(
			term.Term, string(term.Severity), string(term.Category), term.Definition,
			examples, formatTime(term.DateAdded), string(term.Status),
			squirrel.Expr("(SELECT MAX(COALESCE(MAX(list_order), 0), 0) + 1 FROM terms)"),
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create term query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "term", 0)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update applies the non-nil patch fields. Returns domain.ErrNotFound if the term does not exist.
func (r *TermRepo) Update(ctx context.Context, id int64, patch domain.TermPatch) (*domain.Term, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	q := squirrel.Update("terms").Where(squirrel.Eq{"id": id})
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
		examples, err := encodeExamples(*patch.Examples)
		if err != nil {
			return nil, err
		}
		q = q.Set("examples", examples)
	}
	if patch.Status != nil {
		q = q.Set("status", string(*patch.Status))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update term query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "term", id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("term %d: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a term. Returns domain.ErrNotFound if it does not exist.
func (r *TermRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM terms WHERE id = ?`, id)
	if err != nil {
		return mapError(err, "term", id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("term %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Import appends terms after every existing one, keeping their IDs, in a
// single transaction. A duplicate ID fails the whole import with
// domain.ErrAlreadyExists.
func (r *TermRepo) Import(ctx context.Context, terms []domain.Term) (int, error) {
	if len(terms) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var base int64
	if err := tx.QueryRowContext(ctx, `SELECT MIN(COALESCE(MIN(list_order), 0), 0) FROM terms`).Scan(&base); err != nil {
		return 0, fmt.Errorf("read list order: %w", err)
	}

	for i, t := range terms {
		examples, err := encodeExamples(t.Examples)
		if err != nil {
			return 0, err
		}
		date := t.DateAdded
		if date.IsZero() {
			date = time.Now().UTC()
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO terms (id, term, severity, category, definition, examples, date_added, status, list_order)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Term, string(t.Severity), string(t.Category), t.Definition,
			examples, formatTime(date), string(t.Status), base-int64(i)-1,
		)
		if err != nil {
			return 0, mapError(err, "term", t.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(terms), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanTerm(row scannable) (domain.Term, error) {
	var (
		t                                           domain.Term
		severity, category, examples, added, status string
	)
	if err := row.Scan(&t.ID, &t.Term, &severity, &category, &t.Definition, &examples, &added, &status); err != nil {
		return domain.Term{}, err
	}

	t.Severity = domain.Severity(severity)
	t.Category = domain.Category(category)
	t.Status = domain.TermStatus(status)

	if err := json.Unmarshal([]byte(examples), &t.Examples); err != nil {
		return domain.Term{}, fmt.Errorf("decode examples of term %d: %w", t.ID, err)
	}
	if t.Examples == nil {
		t.Examples = []string{}
	}

	parsed, err := time.Parse(timeLayout, added)
	if err != nil {
		return domain.Term{}, fmt.Errorf("parse date_added of term %d: %w", t.ID, err)
	}
	t.DateAdded = parsed.UTC()

	return t, nil
}

func encodeExamples(examples []string) (string, error) {
	if examples == nil {
		examples = []string{}
	}
	b, err := json.Marshal(examples)
	if err != nil {
		return "", fmt.Errorf("encode examples: %w", err)
	}
	return string(b), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
