package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// ReserveIDs draws n values from the terms identity sequence, so explicit
// IDs used by a test never collide with IDs the database assigns later.
func ReserveIDs(t *testing.T, pool *pgxpool.Pool, n int) []int64 {
	t.Helper()

	rows, err := pool.Query(context.Background(),
		`SELECT nextval(pg_get_serial_sequence('terms', 'id')) FROM generate_series(1, $1)`, n)
	if err != nil {
		t.Fatalf("testhelper: ReserveIDs: %v", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, n)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("testhelper: ReserveIDs scan: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("testhelper: ReserveIDs rows: %v", err)
	}
	return ids
}

// SeedTerm inserts an active term with a unique word. The row gets a
// negative list_order, as fixture rows do. Returns the stored domain.Term.
func SeedTerm(t *testing.T, pool *pgxpool.Pool, category domain.Category) domain.Term {
	t.Helper()

	suffix := uniqueSuffix()
	term := domain.Term{
		ID:         ReserveIDs(t, pool, 1)[0],
		Term:       "term-" + suffix,
		Severity:   domain.SeverityMedium,
		Category:   category,
		Definition: "definition " + suffix,
		Examples:   []string{"example " + suffix},
		DateAdded:  time.Now().UTC().Truncate(time.Microsecond),
		Status:     domain.TermStatusActive,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO terms (id, term, severity, category, definition, examples, date_added, status, list_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		term.ID, term.Term, string(term.Severity), string(term.Category), term.Definition,
		term.Examples, term.DateAdded, string(term.Status), -term.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTerm insert: %v", err)
	}

	return term
}
