package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/middleware"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, authHeader string) (*services.Principal, error) {
	args := m.Called(authHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Principal), args.Error(1)
}

// newGatedApp wires the middleware in front of a handler that echoes the principal.
func newGatedApp(auth middleware.Authenticator) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if authErr, ok := err.(*services.AuthError); ok {
				return c.Status(authErr.Status).JSON(fiber.Map{"message": authErr.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		},
	})
	app.Get("/secure", middleware.AdminRequired(auth), func(c *fiber.Ctx) error {
		return c.JSON(middleware.CurrentPrincipal(c))
	})
	return app
}

func TestAdminRequired_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		authErr *services.AuthError
	}{
		{name: "unauthorized", authErr: &services.AuthError{Status: http.StatusUnauthorized, Message: services.MsgAuthHeaderInvalid}},
		{name: "forbidden", authErr: &services.AuthError{Status: http.StatusForbidden, Message: services.MsgInsufficientPermissions}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(MockAuthenticator)
			auth.On("Authenticate", "Bearer abc").Return(nil, tt.authErr).Once()

			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			req.Header.Set("Authorization", "Bearer abc")
			resp, err := newGatedApp(auth).Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.authErr.Status, resp.StatusCode)
			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.authErr.Message, body["message"])
			auth.AssertExpectations(t)
		})
	}
}

func TestAdminRequired_StoresPrincipal(t *testing.T) {
	auth := new(MockAuthenticator)
	principal := &services.Principal{UserID: "u-1", Username: "admin", Role: "admin"}
	auth.On("Authenticate", "Bearer good").Return(principal, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp, err := newGatedApp(auth).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got services.Principal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, *principal, got)
	auth.AssertExpectations(t)
}

func TestAdminRequired_PassesEmptyHeader(t *testing.T) {
	auth := new(MockAuthenticator)
	auth.On("Authenticate", "").Return(nil, &services.AuthError{Status: http.StatusUnauthorized, Message: services.MsgAuthHeaderInvalid}).Once()

	resp, err := newGatedApp(auth).Test(httptest.NewRequest(http.MethodGet, "/secure", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	auth.AssertExpectations(t)
}
