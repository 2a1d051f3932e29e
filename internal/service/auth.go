package service

import (
	"context"
	"errors"
	"fmt"

	"eventdash/internal/domain"
	"eventdash/internal/gateway"
)

var ErrWrongCredentials = errors.New("invalid email or password")

type AuthGateway interface {
	Login(ctx context.Context, input domain.LoginInput) (domain.LoginResponse, error)
	CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	GetUser(ctx context.Context, token, id string) (domain.User, error)
	UpdateUser(ctx context.Context, token, id string, input domain.UpdateUserInput) (domain.User, error)
}

type AuthService struct {
	gw AuthGateway
}

func NewAuthService(gw AuthGateway) *AuthService {
	return &AuthService{gw: gw}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.LoginResponse, error) {
	resp, err := s.gw.Login(ctx, domain.LoginInput{Email: email, Password: password})
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == 400 || apiErr.StatusCode == 401) {
			return domain.LoginResponse{}, ErrWrongCredentials
		}

		return domain.LoginResponse{}, fmt.Errorf("s.gw.Login -> %w", err)
	}

	return resp, nil
}

// Register creates the account, then logs it in so the session gets a real
// bearer token.
func (s *AuthService) Register(ctx context.Context, input domain.CreateUserInput) (domain.LoginResponse, error) {
	if input.Role == "" {
		input.Role = "user"
	}

	if _, err := s.gw.CreateUser(ctx, input); err != nil {
		return domain.LoginResponse{}, fmt.Errorf("s.gw.CreateUser -> %w", err)
	}

	resp, err := s.gw.Login(ctx, domain.LoginInput{Email: input.Email, Password: input.Password})
	if err != nil {
		return domain.LoginResponse{}, fmt.Errorf("s.gw.Login -> %w", err)
	}

	return resp, nil
}

func (s *AuthService) GetUser(ctx context.Context, p domain.Principal, id string) (domain.User, error) {
	user, err := s.gw.GetUser(ctx, p.Token, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.gw.GetUser -> %w", err)
	}

	return user, nil
}

// UpdateProfile patches the logged-in user's own account.
func (s *AuthService) UpdateProfile(ctx context.Context, p domain.Principal, input domain.UpdateUserInput) (domain.User, error) {
	user, err := s.gw.UpdateUser(ctx, p.Token, p.UserID, input)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.gw.UpdateUser -> %w", err)
	}

	return user, nil
}
