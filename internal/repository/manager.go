package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier: то, что умеют и пул соединений, и открытая транзакция.
type Querier interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
}

type pgTxKey struct{}

func txFrom(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(pgTxKey{}).(pgx.Tx)
	return tx, ok
}

func inTransaction(ctx context.Context) bool {
	_, ok := txFrom(ctx)
	return ok
}

// Executor отдаёт транзакцию, привязанную к ctx, а вне транзакции: пул.
// Репозитории ходят в базу только через него.
func (p *Postgres) Executor(ctx context.Context) Querier {
	if tx, ok := txFrom(ctx); ok {
		return tx
	}
	return p.Pool
}

// TransactionManager открывает транзакции PostgreSQL для сервисного слоя.
type TransactionManager struct {
	db   *Postgres
	opts pgx.TxOptions
}

// NewTransactionManager создаёт менеджер с уровнем изоляции READ COMMITTED.
// Гонки read-merge-write закрываются блокировкой строки (SELECT ... FOR UPDATE).
func NewTransactionManager(db *Postgres) *TransactionManager {
	return &TransactionManager{db: db, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

// RunInTransaction выполняет fn в транзакции: commit при nil, иначе rollback
// (в том числе при панике). Вложенный вызов открывает savepoint во внешней транзакции.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	run := func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, pgTxKey{}, tx))
	}
	if outer, ok := txFrom(ctx); ok {
		return pgx.BeginFunc(ctx, outer, run)
	}
	return pgx.BeginTxFunc(ctx, tm.db.Pool, tm.opts, run)
}

type memTxKey struct{ tm *MemoryTransactionManager }

// MemoryTransactionManager сериализует read-merge-write для in-memory хранилища.
// Повторный вход из той же цепочки ctx не блокируется.
type MemoryTransactionManager struct {
	mu sync.Mutex
}

func NewMemoryTransactionManager() *MemoryTransactionManager {
	return &MemoryTransactionManager{}
}

func (tm *MemoryTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	key := memTxKey{tm: tm}
	if ctx.Value(key) != nil {
		return fn(ctx)
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return fn(context.WithValue(ctx, key, struct{}{}))
}
