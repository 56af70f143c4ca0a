package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxManagerStub runs the function with a nil transaction handle. Repository
// mocks accept mock.Anything for the tx argument, so service logic can be
// exercised without a database.
type TxManagerStub struct{}

func NewTxManagerStub() *TxManagerStub {
	return &TxManagerStub{}
}

func (s *TxManagerStub) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}
