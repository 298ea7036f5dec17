package auth

import "context"

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (AuthResponse, error)
	Logout(ctx context.Context, refreshToken string)
}
