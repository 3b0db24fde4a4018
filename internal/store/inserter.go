package store

//go:generate mockgen -destination=mocks/inserter_mock.go -package=mocks . Inserter

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrEmptyTable = errors.New("store: table name is required")

// Inserter is the only capability the site needs from the data store: one
// create per submitted lead. The error message is shown to the visitor verbatim.
type Inserter interface {
	Insert(ctx context.Context, table string, payload any) error
}

type GormInserter struct {
	DB *gorm.DB
}

func NewGormInserter(db *gorm.DB) *GormInserter {
	return &GormInserter{DB: db}
}

func (g *GormInserter) Insert(ctx context.Context, table string, payload any) error {
	if table == "" {
		return ErrEmptyTable
	}
	if payload == nil {
		return fmt.Errorf("store: nil payload for %s", table)
	}
	return g.DB.WithContext(ctx).Table(table).Create(payload).Error
}
