package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx, so repository code runs
// unchanged inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// QuerierFromCtx returns the transaction stored by TxManager.RunInTx, or pool
// when ctx carries none.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx := txFromCtx(ctx); tx != nil {
		return tx
	}
	return pool
}

func txFromCtx(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

// TxManager runs callbacks in a transaction carried by the context.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// NewTxManager returns a TxManager using read committed transactions.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

// RunInTx commits when fn returns nil and rolls back otherwise, including
// when fn panics. A call made inside another RunInTx becomes a savepoint of
// the outer transaction: its rollback undoes only its own work.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	run := func(tx pgx.Tx) error { return fn(context.WithValue(ctx, txKey{}, tx)) }

	if outer := txFromCtx(ctx); outer != nil {
		return pgx.BeginFunc(ctx, outer, run)
	}

	if err := pgx.BeginTxFunc(ctx, m.pool, m.opts, run); err != nil {
		return fmt.Errorf("transaction: %w", err)
	}
	return nil
}
