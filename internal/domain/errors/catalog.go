package errors

import "net/http"

// Accounts and roles.
var (
	ErrAccountNotFound     = define(KindNotFound, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Account not found")
	ErrDuplicateAccount    = define(KindConflict, http.StatusConflict, "ACCOUNT_ALREADY_EXISTS", "An account with this email already exists")
	ErrAccountNotActivated = define(KindForbidden, http.StatusForbidden, "ACCOUNT_NOT_ACTIVATED", "Account has not been activated")
	ErrRoleNotFound        = define(KindNotFound, http.StatusNotFound, "ROLE_NOT_FOUND", "Role not found")
)

// Credentials and tokens.
var (
	ErrInvalidCredentials = define(KindInvalidCredential, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrNotAuthenticated   = define(KindInvalidCredential, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Authentication is required")
	ErrInvalidToken       = define(KindInvalidCredential, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid, expired or revoked token")

	ErrRefreshTokenNotFound = define(KindNotFound, http.StatusBadRequest, "REFRESH_TOKEN_NOT_FOUND", "Refresh token not found")
	ErrRefreshTokenExpired  = define(KindInvalidCredential, http.StatusUnauthorized, "REFRESH_TOKEN_EXPIRED", "Refresh token has expired")
	ErrRefreshTokenRevoked  = define(KindInvalidCredential, http.StatusUnauthorized, "REFRESH_TOKEN_REVOKED", "Refresh token has been revoked")

	ErrActivationKeyNotFound = define(KindNotFound, http.StatusNotFound, "ACTIVATION_KEY_NOT_FOUND", "Unknown activation key")
	ErrResetKeyInvalid       = define(KindNotFound, http.StatusBadRequest, "RESET_KEY_INVALID", "Unknown or expired reset key")
)

// External identity providers.
var (
	ErrUnsupportedProvider     = define(KindInvalidInput, http.StatusBadRequest, "UNSUPPORTED_PROVIDER", "Unsupported identity provider")
	ErrInvalidExternalIdentity = define(KindInvalidCredential, http.StatusBadRequest, "INVALID_EXTERNAL_IDENTITY", "Identity provider did not supply the required fields")
	ErrOAuthStateInvalid       = define(KindInvalidCredential, http.StatusBadRequest, "OAUTH_STATE_INVALID", "Invalid or expired OAuth state")
	ErrOAuthFailed             = define(KindInvalidCredential, http.StatusUnauthorized, "OAUTH_FAILED", "OAuth authentication failed")
)

var (
	ErrValidationFailed = define(KindInvalidInput, http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrPasswordStrength = define(KindInvalidInput, http.StatusBadRequest, "PASSWORD_STRENGTH", "Password does not meet the strength requirements")
	ErrForbidden        = define(KindForbidden, http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrTooManyRequests  = define(KindForbidden, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Rate limit exceeded")
	ErrInternalError    = define(KindUnexpected, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)
