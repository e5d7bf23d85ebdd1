package store

import "context"

// RunAsOf pins ctx to a snapshot month and calls fn inside the provided TxRunner
func RunAsOf(ctx context.Context, tx TxRunner, month string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithAsOfMonth(ctx, month)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
