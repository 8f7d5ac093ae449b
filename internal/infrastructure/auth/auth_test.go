package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/football-hub/internal/platform/clock"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	m, err := NewJWTManager("secret", DefaultTokenTTL, clk)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	token, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	principal, err := m.VerifyAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if principal.UserID != "user-1" {
		t.Fatalf("unexpected principal %+v", principal)
	}

	var parsed claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &parsed); err != nil {
		t.Fatalf("parse unverified: %v", err)
	}
	if parsed.Subject != "user-1" || parsed.ExpiresAt.Sub(parsed.IssuedAt.Time) != 7*24*time.Hour {
		t.Fatalf("unexpected claims %+v", parsed)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	m, err := NewJWTManager("secret", time.Hour, clk)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	token, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	clk.Advance(2 * time.Hour)
	_, err = m.VerifyAccessToken(context.Background(), token)
	if !errors.Is(err, usecase.ErrInvalidToken) || !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestJWTManager_RejectsForgedAndMissing(t *testing.T) {
	t.Parallel()

	m, err := NewJWTManager("secret", time.Hour, nil)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	other, err := NewJWTManager("other-secret", time.Hour, nil)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	forged, err := other.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := m.VerifyAccessToken(context.Background(), forged); !errors.Is(err, usecase.ErrInvalidToken) {
		t.Fatalf("expected forged token rejected, got %v", err)
	}
	if _, err := m.VerifyAccessToken(context.Background(), "not-a-jwt"); !errors.Is(err, usecase.ErrInvalidToken) {
		t.Fatalf("expected malformed token rejected, got %v", err)
	}
	_, err = m.VerifyAccessToken(context.Background(), "  ")
	if !errors.Is(err, usecase.ErrUnauthorized) || errors.Is(err, usecase.ErrInvalidToken) {
		t.Fatalf("expected missing token to be plain unauthorized, got %v", err)
	}
}

func TestJWTManager_RequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTManager(" ", time.Hour, nil); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22" {
		t.Fatalf("hash must not equal the password")
	}

	ok, err := h.Compare(hash, "hunter22")
	if err != nil || !ok {
		t.Fatalf("expected match, ok=%v err=%v", ok, err)
	}
	ok, err = h.Compare(hash, "wrong")
	if err != nil || ok {
		t.Fatalf("expected mismatch without error, ok=%v err=%v", ok, err)
	}
	if _, err := h.Compare("not-a-hash", "x"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}
