package handler

import (
	"encoding/json"
	"net/http"

	"swiftauth/config"
	deliverycontext "swiftauth/internal/delivery/context"
	"swiftauth/internal/delivery/http/response"
	"swiftauth/internal/domain/entity"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/errors"
	"swiftauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthHandler serves the /api/auth routes.
type AuthHandler struct {
	uc                  usecase.AuthUsecase
	allowAttributeLogin bool
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		uc:                  uc,
		allowAttributeLogin: cfg.OAuth2.AllowAttributeLogin,
	}
}

// bindAndValidate decodes the body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(output), "Account registered, check your email to activate it")
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Login successful")
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Token refreshed successfully")
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LogoutAll handles POST /api/auth/logout-all. Admins may pass ?accountId= to end another
// account's sessions.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	principal := deliverycontext.PrincipalFrom(c.Request().Context())
	if principal == nil {
		return domainerrors.ErrNotAuthenticated
	}

	target := principal.AccountID
	if raw := c.QueryParam("accountId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("accountId must be a UUID")
		}
		target = id
	}

	if !principal.CanActOn(target) {
		return domainerrors.ErrForbidden.WithDetails("only admins may log out other accounts")
	}

	if err := h.uc.LogoutAllDevices(c.Request().Context(), target); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func providerParam(c echo.Context) (entity.ProviderType, error) {
	provider, ok := entity.ParseProviderType(c.Param("provider"))
	if !ok {
		return "", domainerrors.ErrUnsupportedProvider.WithDetails(c.Param("provider"))
	}

	return provider, nil
}

// OAuth2Authenticate handles POST /api/auth/oauth2/:provider with the provider's raw profile
// attributes. It is only routed when a trusted gateway has already verified the provider.
func (h *AuthHandler) OAuth2Authenticate(c echo.Context) error {
	if !h.allowAttributeLogin {
		return echo.ErrNotFound
	}

	provider, err := providerParam(c)
	if err != nil {
		return err
	}

	// Numbers stay json.Number so long provider ids keep every digit.
	var attributes map[string]any
	decoder := json.NewDecoder(c.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(&attributes); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("body must be a JSON object of provider attributes")
	}

	output, err := h.uc.AuthenticateWithOAuth2(c.Request().Context(), provider, attributes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "OAuth authentication successful")
}

// OAuth2Begin handles GET /api/auth/oauth2/:provider. With ?redirect=true it redirects to the
// consent page, otherwise it returns the URL for the frontend to open.
func (h *AuthHandler) OAuth2Begin(c echo.Context) error {
	provider, err := providerParam(c)
	if err != nil {
		return err
	}

	authorizationURL, err := h.uc.BeginOAuth2(c.Request().Context(), provider)
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, authorizationURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{"authorizationUrl": authorizationURL}, "Authorization URL generated")
}

// OAuth2Callback handles GET /api/auth/oauth2/:provider/callback.
func (h *AuthHandler) OAuth2Callback(c echo.Context) error {
	provider, err := providerParam(c)
	if err != nil {
		return err
	}

	if providerErr := c.QueryParam("error"); providerErr != "" {
		return domainerrors.ErrOAuthFailed.WithDetails(providerErr)
	}

	code, state := c.QueryParam("code"), c.QueryParam("state")
	if code == "" || state == "" {
		return domainerrors.ErrValidationFailed.WithDetails("code and state are required")
	}

	output, err := h.uc.CompleteOAuth2(c.Request().Context(), provider, code, state)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "OAuth authentication successful")
}

// GoogleIDToken handles POST /api/auth/oauth2/google/id-token.
func (h *AuthHandler) GoogleIDToken(c echo.Context) error {
	var req idTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.AuthenticateWithIDToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Google authentication successful")
}

// VerifyEmail handles GET /api/auth/verify?token=.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	if err := h.uc.VerifyEmail(c.Request().Context(), c.QueryParam("token")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Account activated")
}

// RequestPasswordReset handles POST /api/auth/reset-password/request. The answer is the same
// whether or not the email is registered.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req passwordResetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "If the email is registered, a reset link has been sent")
}

// ConfirmPasswordReset handles POST /api/auth/reset-password/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req passwordResetConfirmRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.uc.CompletePasswordReset(c.Request().Context(), &usecase.CompletePasswordResetInput{
		ResetKey:    req.ResetKey,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Password has been reset")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
