// Package transaction carries an open transaction through a context so DAO
// calls made inside DB.TX join it instead of the pool. The contact form's
// newsletter opt-in relies on this to make its two writes atomic.
package transaction

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type txContextKey struct{}

func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// FromContext returns the transaction started by DB.TX, if the context
// descends from one.
func FromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txContextKey{}).(*sqlx.Tx)
	return tx, ok
}
