package testhelper

import (
	"context"
	"testing"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	term := SeedTerm(t, pool, domain.CategorySocialMedia)

	var word string
	err := pool.QueryRow(
		context.Background(),
		`SELECT term FROM terms WHERE id = $1`,
		term.ID,
	).Scan(&word)
	if err != nil {
		t.Fatalf("expected term in DB, got error: %v", err)
	}

	if word != term.Term {
		t.Fatalf("expected term %q, got %q", term.Term, word)
	}
}
