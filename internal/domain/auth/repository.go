package auth

import "context"

// AdminRepository defines data access for admin accounts.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (AdminUser, error)
}
