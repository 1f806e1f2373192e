package handlers

import (
	"fmt"

	"portfolio/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
	log         *zap.SugaredLogger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
		log:         log,
	}
}

// RegisterRoutes registers the authentication routes. There is no
// registration endpoint; users are created with the create-admin command.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string              `json:"token"`
	User  *services.Principal `json:"user"`
}

// HandleLogin handles user login and issues a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if err := h.validate.Struct(req); err != nil {
		errorMessages := make(map[string]string)
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, e := range validationErrors {
				errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
		}
		return &services.ValidationError{Message: "Username and password are required", Fields: errorMessages}
	}

	token, user, err := h.authService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		h.log.Infow("login failed", "username", req.Username, "err", err)
		return err
	}

	h.log.Infow("login succeeded", "username", user.Username)
	return c.JSON(LoginResponse{
		Token: token,
		User:  &services.Principal{UserID: user.ID, Username: user.Username, Role: user.Role},
	})
}
