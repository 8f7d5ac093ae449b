package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/football-hub/internal/domain/user"
	"github.com/riskibarqy/football-hub/internal/infrastructure/repository/memory"
	usermock "github.com/riskibarqy/football-hub/internal/mocks/domain/user"
	"github.com/riskibarqy/football-hub/internal/platform/id"
	"github.com/stretchr/testify/mock"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) (bool, error) {
	return hash == "hashed:"+password, nil
}

type stubIssuer struct{}

func (stubIssuer) Issue(userID string) (string, error) {
	return "token-for-" + userID, nil
}

func newAuthServiceForTest(users user.Repository) *AuthService {
	return NewAuthService(users, plainHasher{}, stubIssuer{}, id.Static("user-1"))
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newAuthServiceForTest(memory.NewUserRepository())

	signup, err := service.Signup(ctx, SignupInput{Email: "  Fan@Example.com ", Password: "secret1", Name: "Fan"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if signup.Token != "token-for-user-1" {
		t.Fatalf("unexpected token: %s", signup.Token)
	}
	if signup.User.Email != "fan@example.com" || signup.User.Role != user.RoleUser {
		t.Fatalf("unexpected public user: %+v", signup.User)
	}

	login, err := service.Login(ctx, LoginInput{Email: "FAN@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != "user-1" {
		t.Fatalf("unexpected login user id: %s", login.User.ID)
	}
}

func TestAuthService_SignupValidation(t *testing.T) {
	t.Parallel()

	service := newAuthServiceForTest(usermock.NewRepository(t))
	cases := []struct {
		name    string
		input   SignupInput
		message string
	}{
		{name: "missing name", input: SignupInput{Email: "a@b.com", Password: "secret1"}, message: "email, password, and name are required"},
		{name: "missing email", input: SignupInput{Password: "secret1", Name: "A"}, message: "email, password, and name are required"},
		{name: "short password", input: SignupInput{Email: "a@b.com", Password: "12345", Name: "A"}, message: "at least 6 characters"},
		{name: "bad email", input: SignupInput{Email: "not-an-email", Password: "secret1", Name: "A"}, message: "email is invalid"},
		{name: "password over bcrypt limit", input: SignupInput{Email: "a@b.com", Password: strings.Repeat("p", 80), Name: "A"}, message: "at most 72 bytes"},
		{name: "multibyte password over limit", input: SignupInput{Email: "a@b.com", Password: strings.Repeat("é", 40), Name: "A"}, message: "at most 72 bytes"},
	}

	for _, tc := range cases {
		_, err := service.Signup(context.Background(), tc.input)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", tc.name, err)
		}
		if !strings.Contains(err.Error(), tc.message) {
			t.Fatalf("%s: unexpected message %q", tc.name, err.Error())
		}
	}
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	t.Parallel()

	users := usermock.NewRepository(t)
	users.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(user.User{ID: "existing"}, true, nil).
		Once()

	_, err := newAuthServiceForTest(users).Signup(context.Background(), SignupInput{
		Email:    "Taken@example.com",
		Password: "secret1",
		Name:     "Dup",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthService_SignupRaceMapsToConflict(t *testing.T) {
	t.Parallel()

	users := usermock.NewRepository(t)
	users.On("GetByEmail", mock.Anything, "race@example.com").Return(user.User{}, false, nil).Once()
	users.On("Create", mock.Anything, mock.AnythingOfType("user.User")).Return(user.ErrEmailTaken).Once()

	_, err := newAuthServiceForTest(users).Signup(context.Background(), SignupInput{
		Email:    "race@example.com",
		Password: "secret1",
		Name:     "Race",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthService_LoginFailuresShareMessage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := memory.NewUserRepository(user.User{
		ID:           "u-1",
		Email:        "fan@example.com",
		PasswordHash: "hashed:right",
		Name:         "Fan",
		Role:         user.RoleUser,
	})
	service := newAuthServiceForTest(users)

	_, errWrong := service.Login(ctx, LoginInput{Email: "fan@example.com", Password: "wrong"})
	_, errUnknown := service.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "right"})
	for _, err := range []error{errWrong, errUnknown} {
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	}
	if errWrong.Error() != errUnknown.Error() {
		t.Fatalf("login failures must not reveal which part was wrong: %q vs %q", errWrong, errUnknown)
	}

	_, err := service.Login(ctx, LoginInput{Email: "fan@example.com"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing password, got %v", err)
	}
}

func TestAuthService_IsAdminUsesStoredRole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := memory.NewUserRepository(
		user.User{ID: "admin-1", Email: "admin@example.com", Role: user.RoleAdmin},
		user.User{ID: "user-2", Email: "user@example.com", Role: user.RoleUser},
	)
	service := newAuthServiceForTest(users)

	isAdmin, err := service.IsAdmin(ctx, "admin-1")
	if err != nil || !isAdmin {
		t.Fatalf("expected admin, got %v err=%v", isAdmin, err)
	}
	isAdmin, err = service.IsAdmin(ctx, "user-2")
	if err != nil || isAdmin {
		t.Fatalf("expected non-admin, got %v err=%v", isAdmin, err)
	}
	if _, err := service.IsAdmin(ctx, "deleted"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown user, got %v", err)
	}

	me, err := service.Me(ctx, "user-2")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if me.Email != "user@example.com" {
		t.Fatalf("unexpected me: %+v", me)
	}
}
