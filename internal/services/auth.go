package services

import (
	"context"
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already taken")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidToken           = errors.New("invalid token")
)

// emailPattern is the minimal RFC-like check applied on registration.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// defaultRole is assigned when registration omits a role.
const defaultRole = "user"

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, password, role string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// AuthService handles registration, login, and token verification.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and returns it with a freshly issued token.
func (svc *AuthService) Register(ctx context.Context, username, email, password, role string) (*models.UserDB, string, error) {
	if !emailPattern.MatchString(email) {
		logger.Log.Warnw("rejected registration with malformed email", "email", email)
		return nil, "", ErrInvalidEmail
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Warnw("email already registered", "email", email)
		return nil, "", ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	if role == "" {
		role = defaultRole
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword), role)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user by email and returns it with a fresh token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warnw("login for unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Warnw("password mismatch", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Verify resolves the user a session token belongs to.
func (svc *AuthService) Verify(ctx context.Context, tokenString string) (*models.UserDB, error) {
	userID, err := svc.jwt.GetUserID(ctx, tokenString)
	if err != nil {
		logger.Log.Warnw("token validation failed", "err", err)
		return nil, ErrInvalidToken
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user for token", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("token references missing user", "userID", userID)
		return nil, ErrInvalidToken
	}

	return user, nil
}

// ListUsers returns all registered users.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
