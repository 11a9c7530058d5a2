package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared by all repositories.
var (
	ErrNotFound = errors.New("registro no encontrado")
	// ErrSpecialtyInUse blocks deleting a specialty that physicians still
	// reference (protect-on-delete).
	ErrSpecialtyInUse = errors.New("la especialidad tiene médicos asociados y no puede eliminarse")
)

type txKey struct{}

// ContextWithTx carries an open transaction so repositories participate in it.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// dbFromContext prefers the transaction in ctx over the base connection.
func dbFromContext(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return base.WithContext(ctx)
}

// sortColumn resolves a requested sort key against a whitelist, falling back
// to the given default column.
func sortColumn(allowed map[string]string, requested, fallback string) string {
	if col, ok := allowed[requested]; ok {
		return col
	}
	return fallback
}
