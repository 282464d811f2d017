// Package tr передаёт транзакцию менеджера транзакций от use case к репозиториям через контекст.
package tr

import (
	"context"

	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/jackc/pgx/v5"
)

type ctxKey struct{}

// WithTx кладёт транзакцию в контекст. tx берётся из trm Transaction().
func WithTx(ctx context.Context, tx any) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// TxFromCtx возвращает pgx.Tx, положенную WithTx, или ErrTransactionNotFound.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(ctxKey{}).(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}

	return tx, nil
}
