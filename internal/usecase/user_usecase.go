// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// CredentialsInput defines the data required to register or log in.
type CredentialsInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// --- Output DTOs ---

// AuthOutput returns the issued access token after a successful
// registration or login.
type AuthOutput struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
}

// UserUsecase defines the interface for local account operations. It only
// exists in deployments using the local backend; remote deployments
// delegate identity issuance entirely to the external provider.
type UserUsecase interface {
	Register(ctx context.Context, input *CredentialsInput) (*AuthOutput, error)
	Login(ctx context.Context, input *CredentialsInput) (*AuthOutput, error)
}
