package handler

import (
	"net/http"
	"strconv"

	deliverycontext "swiftauth/internal/delivery/context"
	"swiftauth/internal/delivery/http/response"
	"swiftauth/internal/domain/entity"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/errors"
	"swiftauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandler serves the /api/accounts routes. Every route requires authentication.
type AccountHandler struct {
	auth     usecase.AuthUsecase
	accounts usecase.AccountUsecase
	sessions usecase.SessionUsecase
}

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	Auth     usecase.AuthUsecase
	Accounts usecase.AccountUsecase
	Sessions usecase.SessionUsecase
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		auth:     params.Auth,
		accounts: params.Accounts,
		sessions: params.Sessions,
	}
}

// targetAccount parses :id and checks the caller may act on it.
func targetAccount(c echo.Context) (uuid.UUID, error) {
	principal := deliverycontext.PrincipalFrom(c.Request().Context())
	if principal == nil {
		return uuid.Nil, domainerrors.ErrNotAuthenticated
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	if !principal.CanActOn(id) {
		return uuid.Nil, domainerrors.ErrForbidden.WithDetails("accounts may only be managed by their owner or an admin")
	}

	return id, nil
}

// Me handles GET /api/accounts/me.
func (h *AccountHandler) Me(c echo.Context) error {
	account, err := h.auth.CurrentAccount(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account), "")
}

// MySessions handles GET /api/accounts/me/sessions.
func (h *AccountHandler) MySessions(c echo.Context) error {
	principal := deliverycontext.PrincipalFrom(c.Request().Context())
	if principal == nil {
		return domainerrors.ErrNotAuthenticated
	}

	count, err := h.sessions.CountActiveSessions(c.Request().Context(), principal.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"activeSessions": count}, "")
}

// Get handles GET /api/accounts/:id.
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := targetAccount(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account), "")
}

// List handles GET /api/accounts?offset=&limit=. Admin only.
func (h *AccountHandler) List(c echo.Context) error {
	input := &usecase.ListAccountsInput{}
	for name, dst := range map[string]*int{"offset": &input.Offset, "limit": &input.Limit} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}

		n, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
		}
		*dst = n
	}

	accounts, err := h.accounts.ListAccounts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]*accountResponse, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, newAccountResponse(account))
	}

	return response.Success(c, http.StatusOK, data, "")
}

// ChangePassword handles PUT /api/accounts/:id/password.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	id, err := targetAccount(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accounts.ChangePassword(c.Request().Context(), id, req.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Password changed, all sessions have been signed out")
}

// Delete handles DELETE /api/accounts/:id.
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := targetAccount(c)
	if err != nil {
		return err
	}

	if err := h.accounts.DeleteAccount(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddRole handles POST /api/accounts/:id/roles/:role. Admin only.
func (h *AccountHandler) AddRole(c echo.Context) error {
	id, err := targetAccount(c)
	if err != nil {
		return err
	}

	if err := h.accounts.AddRole(c.Request().Context(), id, entity.Role(c.Param("role"))); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveRole handles DELETE /api/accounts/:id/roles/:role. Admin only.
func (h *AccountHandler) RemoveRole(c echo.Context) error {
	id, err := targetAccount(c)
	if err != nil {
		return err
	}

	if err := h.accounts.RemoveRole(c.Request().Context(), id, entity.Role(c.Param("role"))); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
