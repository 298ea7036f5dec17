package auth

import (
	"context"
	"strings"
	"time"

	"github.com/glassdash/crm-backend-go/internal/domain/auth"
	"github.com/glassdash/crm-backend-go/internal/domain/user"
	"github.com/glassdash/crm-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a local account. The first account becomes Admin; every
// later one defaults to Staff.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, req.Email) {
			return auth.AuthResponse{}, auth.ErrEmailExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	role := user.RoleStaff
	if len(users) == 0 {
		role = user.RoleAdmin
	}

	newUser := user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Save(ctx, append(users, newUser)); err != nil {
		return auth.AuthResponse{}, err
	}
	return s.issueTokens(newUser)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	for _, u := range users {
		if !strings.EqualFold(u.Email, req.Email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return s.issueTokens(u)
	}
	return auth.AuthResponse{}, auth.ErrInvalidCredentials
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.AuthResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.AuthResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	for _, u := range users {
		if u.ID == userID {
			return s.issueTokens(u)
		}
	}
	return auth.AuthResponse{}, user.ErrUserNotFound
}

func (s *AuthServiceImpl) Logout(_ context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.AuthResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{
		AccessToken:  accessToken,
		ExpiresAt:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
		User: auth.UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		},
	}, nil
}
