package auth

import "context"

// AuthService defines admin authentication logic.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
