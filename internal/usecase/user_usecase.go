// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"aeon/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a customer with a login.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account. It never carries the password hash.
type RegisterOutput struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
	Message  string      `json:"message"`
}

// LoginOutput returns the account and, when signing is configured, an access token.
type LoginOutput struct {
	ID          uint        `json:"id"`
	Username    string      `json:"username"`
	Role        entity.Role `json:"role"`
	AccessToken string      `json:"access_token,omitempty"`
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
