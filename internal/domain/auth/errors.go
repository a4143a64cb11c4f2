package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("email atau password salah")
	ErrInvalidToken           = errors.New("token tidak valid")
	ErrAdminPrivilegeRequired = errors.New("akses admin diperlukan")
)
