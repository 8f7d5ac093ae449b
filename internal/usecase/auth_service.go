package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-hub/internal/domain/user"
	"github.com/riskibarqy/football-hub/internal/platform/id"
)

const (
	MinPasswordLength = 6
	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
	Name     string `json:"name" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is the account shape returned to clients.
type PublicUser struct {
	ID    string    `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  user.Role `json:"role"`
}

func NewPublicUser(u user.User) PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

type AuthResult struct {
	Token string
	User  PublicUser
}

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)

type AuthService struct {
	users     user.Repository
	hasher    PasswordHasher
	tokens    TokenIssuer
	ids       id.Generator
	validator *validator.Validate
	now       func() time.Time
}

func NewAuthService(users user.Repository, hasher PasswordHasher, tokens TokenIssuer, ids id.Generator) *AuthService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		ids:       ids,
		validator: newSignupValidator(),
		now:       time.Now,
	}
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Signup")
	defer span.End()

	input.Email = user.NormalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validator.StructCtx(ctx, input); err != nil {
		return AuthResult{}, signupValidationError(err)
	}

	_, exists, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("get user by email: %w", err)
	}
	if exists {
		return AuthResult{}, fmt.Errorf("%w: %s", ErrConflict, user.ErrEmailTaken.Error())
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}
	userID, err := s.ids.NewID()
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate user id: %w", err)
	}

	now := s.now().UTC()
	account := user.User{
		ID:           userID,
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Role:         user.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, account); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return AuthResult{}, fmt.Errorf("%w: %s", ErrConflict, user.ErrEmailTaken.Error())
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	return s.issue(account)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	input.Email = user.NormalizeEmail(input.Email)
	if err := s.validator.StructCtx(ctx, input); err != nil {
		return AuthResult{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	account, exists, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("get user by email: %w", err)
	}
	if !exists {
		return AuthResult{}, errInvalidCredentials
	}

	ok, err := s.hasher.Compare(account.PasswordHash, input.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return AuthResult{}, errInvalidCredentials
	}

	return s.issue(account)
}

// Me returns the caller's account.
func (s *AuthService) Me(ctx context.Context, userID string) (PublicUser, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Me")
	defer span.End()

	account, err := s.lookup(ctx, userID)
	if err != nil {
		return PublicUser{}, err
	}
	return NewPublicUser(account), nil
}

// IsAdmin reads the persisted role; a deleted account is unauthorized.
func (s *AuthService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.IsAdmin")
	defer span.End()

	account, err := s.lookup(ctx, userID)
	if err != nil {
		return false, err
	}
	return account.IsAdmin(), nil
}

func (s *AuthService) lookup(ctx context.Context, userID string) (user.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}

	account, exists, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user no longer exists", ErrUnauthorized)
	}
	return account, nil
}

func (s *AuthService) issue(account user.User) (AuthResult, error) {
	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{Token: token, User: NewPublicUser(account)}, nil
}

func signupValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return fmt.Errorf("%w: email, password, and name are required", ErrInvalidInput)
		}
	}
	switch fe := fieldErrs[0]; fe.Field() {
	case "Email":
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	case "Password":
		if fe.Tag() == "maxbytes" {
			return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, MaxPasswordBytes)
		}
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	default:
		return fmt.Errorf("%w: %s is invalid", ErrInvalidInput, strings.ToLower(fe.Field()))
	}
}

// newSignupValidator adds maxbytes, a byte-length bound; the built-in max
// counts runes.
func newSignupValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	return v
}
