package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/database"
)

// GetQuerier returns the transaction bound to the context, or the pool.
// Repositories go through this so they work inside and outside transactions.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
