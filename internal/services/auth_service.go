package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	// TokenTTL is the lifetime of an issued token. There is no refresh.
	TokenTTL = 24 * time.Hour
	// PasswordCost is the bcrypt cost used for stored password hashes.
	PasswordCost = 12
)

// Gate rejection messages, returned to the caller verbatim.
const (
	MsgAuthHeaderInvalid       = "Authorization header missing or invalid"
	MsgTokenMissing            = "Token missing"
	MsgInvalidToken            = "Invalid or expired token"
	MsgUserNotFound            = "User not found"
	MsgInsufficientPermissions = "Insufficient permissions"
	MsgInternalError           = "Internal server error"
)

// Claims is the payload of a session token.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// Principal is the caller identity established by the admin gate.
type Principal struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthService handles login, token issuance/verification and the admin gate.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// AuthOption customizes an AuthService.
type AuthOption func(*AuthService)

// WithClock overrides the clock used to stamp issued tokens.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

// NewAuthService creates a new AuthService signing with jwtSecret.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, opts ...AuthOption) *AuthService {
	s := &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  TokenTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueToken returns a signed token for the given identity, valid for TokenTTL.
func (s *AuthService) IssueToken(userID, username, role string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.tokenTTL).Unix(),
		},
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature and expiry of tokenString and returns
// its claims. The error wraps ErrExpiredToken or ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors == jwt.ValidationErrorExpired {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Login checks username/password against the credential store and returns
// a fresh token with the matching user.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login %s: %w", username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate implements the admin gate for an Authorization header value.
// Rejections are *AuthError carrying the status and message for the caller.
func (s *AuthService) Authenticate(ctx context.Context, authHeader string) (*Principal, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return nil, &AuthError{Status: http.StatusUnauthorized, Message: MsgAuthHeaderInvalid}
	}
	tokenString := strings.TrimSpace(authHeader[len(prefix):])
	if tokenString == "" {
		return nil, &AuthError{Status: http.StatusUnauthorized, Message: MsgTokenMissing}
	}

	claims, err := s.VerifyToken(tokenString)
	if err != nil {
		return nil, &AuthError{Status: http.StatusUnauthorized, Message: MsgInvalidToken, Err: err}
	}

	// the stored role wins over the role in the token
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &AuthError{Status: http.StatusUnauthorized, Message: MsgUserNotFound}
		}
		return nil, &AuthError{Status: http.StatusInternalServerError, Message: MsgInternalError, Err: err}
	}
	if user.Role != models.RoleAdmin {
		return nil, &AuthError{Status: http.StatusForbidden, Message: MsgInsufficientPermissions}
	}

	return &Principal{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// CreateAdmin creates or updates a user with a bcrypt-hashed password. It
// backs the create-admin command; users are never created over HTTP.
func (s *AuthService) CreateAdmin(ctx context.Context, username, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, &ValidationError{Message: "username and password are required"}
	}
	if role == "" {
		role = models.RoleAdmin
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{Username: username, PasswordHash: string(hash), Role: role}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}
