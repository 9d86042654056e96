// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"swiftauth/config"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const jwtIssuer = "swiftauth"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte           // Symmetric HS256 signing key.
	accessTTL  time.Duration    // Time-to-live for access tokens.
	refreshTTL time.Duration    // Time-to-live for refresh tokens, used only to size their expiry.
	now        func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Token.AccessTTL <= 0 || cfg.Token.RefreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	return &jwtService{
		secret:     []byte(cfg.SecretKey.Access),
		accessTTL:  cfg.Token.AccessTTL,
		refreshTTL: cfg.Token.RefreshTTL,
		now:        now,
	}, nil
}

// IssueAccessToken signs an access token carrying the account's roles.
func (s *jwtService) IssueAccessToken(accountID uuid.UUID, email string, roles []string) (string, error) {
	if roles == nil {
		roles = []string{}
	}

	return s.generateToken(accountID, email, roles, service.TokenTypeAccess)
}

// IssueTypedToken signs a token with an arbitrary type tag and no roles.
func (s *jwtService) IssueTypedToken(accountID uuid.UUID, email, tokenType string) (string, error) {
	return s.generateToken(accountID, email, nil, tokenType)
}

// Verify parses the token, checking the HMAC signature, algorithm and expiry.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token is not valid")
	}

	return claims, nil
}

// IsExpired reports true for expired tokens and for tokens that cannot be verified at all.
func (s *jwtService) IsExpired(tokenString string) bool {
	_, err := s.Verify(tokenString)

	return err != nil
}

func (s *jwtService) ExtractSubject(tokenString string) (string, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

func (s *jwtService) ExtractAccountID(tokenString string) (uuid.UUID, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	return claims.AccountID, nil
}

// RefreshTokenTTL returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(accountID uuid.UUID, email string, roles []string, tokenType string) (string, error) {
	now := s.now()
	claims := &service.Claims{
		AccountID: accountID,
		Roles:     roles,
		Type:      tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
