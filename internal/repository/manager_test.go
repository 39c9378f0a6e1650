package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type stubTx struct{ pgx.Tx }

func TestPostgres_ExecutorPrefersTxFromContext(t *testing.T) {
	db := &Postgres{}
	tx := &stubTx{}

	assert.False(t, inTransaction(context.Background()))
	assert.NotEqual(t, Querier(tx), db.Executor(context.Background()))

	ctx := context.WithValue(context.Background(), pgTxKey{}, pgx.Tx(tx))
	assert.True(t, inTransaction(ctx))
	assert.Same(t, tx, db.Executor(ctx))
}
