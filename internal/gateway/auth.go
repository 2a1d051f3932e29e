package gateway

import (
	"context"
	"net/http"

	"eventdash/internal/domain"
)

func (c *Client) Login(ctx context.Context, input domain.LoginInput) (domain.LoginResponse, error) {
	var resp domain.LoginResponse
	if err := c.do(ctx, "auth_login", http.MethodPost, "/api/auth/login", "", input, &resp); err != nil {
		return domain.LoginResponse{}, err
	}

	return resp, nil
}

func (c *Client) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	var user domain.User
	if err := c.do(ctx, "user_create", http.MethodPost, "/api/users", "", input, &user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (c *Client) GetUser(ctx context.Context, token, id string) (domain.User, error) {
	var user domain.User
	if err := c.do(ctx, "user_get", http.MethodGet, "/api/users/"+id, token, nil, &user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, input domain.UpdateUserInput) (domain.User, error) {
	var user domain.User
	if err := c.do(ctx, "user_update", http.MethodPut, "/api/users/"+id, token, input, &user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}
