// Package postgres provides PostgreSQL implementations of the Noteful repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"noteful/pkg/logger"
)

// Константы для сообщений об ошибках транзакций.
const (
	ErrBeginTx    = "failed to begin transaction"
	ErrCommitTx   = "failed to commit transaction"
	ErrRollbackTx = "failed to roll back transaction"
)

// Querier - общее подмножество пула и транзакции.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgxPoolInterface реализуют *pgxpool.Pool и pgxmock.PgxPoolIface.
type PgxPoolInterface interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txKeyType struct{}

var txKey = txKeyType{}

// querierFrom возвращает транзакцию из контекста, если она открыта, иначе пул.
func querierFrom(ctx context.Context, pool PgxPoolInterface) Querier {
	if tx, ok := ctx.Value(txKey).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// Transactor реализует repositories.Transactor поверх пула pgx.
type Transactor struct {
	pool PgxPoolInterface
}

// NewTransactor создает Transactor.
func NewTransactor(pool PgxPoolInterface) *Transactor {
	return &Transactor{pool: pool}
}

// WithinTx выполняет fn в транзакции. Если транзакция уже открыта в ctx,
// fn выполняется в ней же.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey).(pgx.Tx); ok {
		return fn(ctx)
	}

	log := logger.Log(ctx).With(zap.String("method", "Transactor.WithinTx"))

	tx, err := t.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, ErrBeginTx, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrBeginTx, err)
	}

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Warn(ctx, ErrRollbackTx, zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, ErrCommitTx, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrCommitTx, err)
	}
	return nil
}
