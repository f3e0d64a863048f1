package database

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs fn inside a single database transaction. Repositories join
// it through their WithTx(tx) method.
//
//go:generate mockgen -source=tx.go -destination=mock/tx_mock.go -package=mock
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
