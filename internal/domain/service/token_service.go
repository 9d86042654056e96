package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type tags carried in the "type" claim.
const (
	TokenTypeAccess = "access"
)

// Claims defines the custom claims for the JWT tokens.
// The registered subject is the account email.
type Claims struct {
	AccountID uuid.UUID `json:"accountId"`
	Roles     []string  `json:"roles,omitempty"`
	Type      string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccessToken signs an access token for the account.
	IssueAccessToken(accountID uuid.UUID, email string, roles []string) (string, error)

	// IssueTypedToken signs a token with a caller-chosen type tag and no roles.
	IssueTypedToken(accountID uuid.UUID, email, tokenType string) (string, error)

	// Verify checks signature, algorithm and expiry and returns the claims.
	Verify(tokenString string) (*Claims, error)

	// IsExpired reports whether the token is past its expiry. Unverifiable tokens count as expired.
	IsExpired(tokenString string) bool

	// ExtractSubject returns the email the token was issued for.
	ExtractSubject(tokenString string) (string, error)

	// ExtractAccountID returns the account id the token was issued for.
	ExtractAccountID(tokenString string) (uuid.UUID, error)

	// RefreshTokenTTL returns the configured lifetime of refresh tokens.
	RefreshTokenTTL() time.Duration
}
