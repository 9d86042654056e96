package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "swiftauth/internal/delivery/context"
	"swiftauth/internal/delivery/http/response"
	"swiftauth/internal/delivery/http/validator"
	"swiftauth/internal/domain/entity"
	"swiftauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withPrincipal(c echo.Context, principal *entity.Principal) {
	ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
	c.SetRequest(c.Request().WithContext(ctx))
}

func newTestAccount(email string, roles ...entity.Role) *entity.Account {
	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleUser}
	}

	return &entity.Account{
		ID:        uuid.New(),
		Email:     email,
		Activated: true,
		Roles:     roles,
		CreatedAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestAuthOutput(account *entity.Account) *usecase.AuthOutput {
	return &usecase.AuthOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		Account:      account,
	}
}

// decodeResponse unmarshals the envelope and re-decodes its data into out when out is non-nil.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, out any) response.Response {
	t.Helper()

	var envelope struct {
		response.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}

	return envelope.Response
}
