// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"swiftauth/internal/domain/entity"
	"swiftauth/internal/usecase"

	"github.com/google/uuid"
)

const tokenTypeBearer = "Bearer"

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type idTokenRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type passwordResetConfirmRequest struct {
	ResetKey    string `json:"resetKey" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type changePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required"`
}

type authResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	TokenType    string    `json:"tokenType"`
	AccountID    uuid.UUID `json:"accountId"`
	Email        string    `json:"email"`
}

func newAuthResponse(output *usecase.AuthOutput) *authResponse {
	return &authResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    tokenTypeBearer,
		AccountID:    output.Account.ID,
		Email:        output.Account.Email,
	}
}

// accountResponse never carries the password hash or pending secrets.
type accountResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Activated   bool       `json:"activated"`
	Roles       []string   `json:"roles"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func newAccountResponse(account *entity.Account) *accountResponse {
	return &accountResponse{
		ID:          account.ID,
		Email:       account.Email,
		Activated:   account.Activated,
		Roles:       account.Roles.ToStrings(),
		CreatedAt:   account.CreatedAt,
		LastLoginAt: account.LastLoginAt,
	}
}
