package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expose     bool
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "auth rejection",
			err:        &services.AuthError{Status: fiber.StatusForbidden, Message: services.MsgInsufficientPermissions},
			wantStatus: fiber.StatusForbidden,
			wantBody:   map[string]any{"message": services.MsgInsufficientPermissions},
		},
		{
			name:       "auth store failure hides cause",
			err:        &services.AuthError{Status: fiber.StatusInternalServerError, Message: services.MsgInternalError, Err: errors.New("db down")},
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   map[string]any{"message": services.MsgInternalError},
		},
		{
			name:       "validation with fields",
			err:        &services.ValidationError{Message: services.MsgMissingFields, Fields: map[string]string{"title": "required"}},
			wantStatus: fiber.StatusBadRequest,
			wantBody:   map[string]any{"message": services.MsgMissingFields, "errors": map[string]any{"title": "required"}},
		},
		{
			name:       "validation without fields",
			err:        &services.ValidationError{Message: "Skill already exists"},
			wantStatus: fiber.StatusBadRequest,
			wantBody:   map[string]any{"message": "Skill already exists"},
		},
		{
			name:       "not found",
			err:        fmt.Errorf("wrapped: %w", &services.NotFoundError{Resource: "Skill", ID: "1"}),
			wantStatus: fiber.StatusNotFound,
			wantBody:   map[string]any{"message": "Skill not found"},
		},
		{
			name:       "bad credentials",
			err:        services.ErrInvalidCredentials,
			wantStatus: fiber.StatusUnauthorized,
			wantBody:   map[string]any{"message": "Invalid username or password"},
		},
		{
			name:       "fiber error",
			err:        fiber.NewError(fiber.StatusBadRequest, MsgInvalidBody),
			wantStatus: fiber.StatusBadRequest,
			wantBody:   map[string]any{"message": MsgInvalidBody},
		},
		{
			name:       "route not found",
			err:        fiber.ErrNotFound,
			wantStatus: fiber.StatusNotFound,
			wantBody:   map[string]any{"message": "Not Found"},
		},
		{
			name:       "unexpected with details",
			err:        errors.New("boom"),
			expose:     true,
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   map[string]any{"message": services.MsgInternalError, "error": "boom"},
		},
		{
			name:       "unexpected in production",
			err:        errors.New("boom"),
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   map[string]any{"message": services.MsgInternalError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(zap.NewNop().Sugar(), tt.expose)})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
