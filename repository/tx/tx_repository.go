package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxRepository hands out transactions for writes that span several tables.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewTxRepository(conn *sqlx.DB) TxRepository {
	return &SQL{conn: conn}
}

func (s *SQL) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return s.conn.BeginTxx(ctx, nil)
}

func (s *SQL) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

// RollbackTx is a no-op on a nil transaction.
func (s *SQL) RollbackTx(tx *sqlx.Tx) error {
	if tx == nil {
		return nil
	}
	return tx.Rollback()
}
