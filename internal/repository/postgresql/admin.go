package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/auth"
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/database"
)

type adminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepository{db: db}
}

// GetByEmail implements auth.AdminRepository.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (auth.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, full_name, created_at, updated_at
		FROM admin_users
		WHERE email = $1
	`

	var admin auth.AdminUser
	err := q.QueryRow(ctx, query, email).Scan(
		&admin.ID, &admin.Email, &admin.PasswordHash, &admin.FullName,
		&admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AdminUser{}, auth.ErrInvalidCredentials
		}
		return auth.AdminUser{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return admin, nil
}
