package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"

	"github.com/tarefasapp/tarefas/internal/auth"
)

type fakeIssuer struct {
	issued []auth.Identity
}

func (f *fakeIssuer) Issue(identity auth.Identity) (string, time.Time, error) {
	f.issued = append(f.issued, identity)
	return "signed-token", time.Unix(1700000000, 0), nil
}

const selectUserFragment = "FROM users\nWHERE email = $1"

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse", auth.AlgorithmBcrypt)
	if err != nil {
		t.Fatal(err)
	}

	mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectUserFragment)).
		WithArgs("ana@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password"}).
			AddRow(int64(3), "Ana", hash))

	issuer := &fakeIssuer{}
	svc := NewAuthService(zerolog.Nop(), mock, issuer)

	result, err := svc.Login(context.Background(), LoginParams{
		Email:    "ana@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "signed-token" {
		t.Errorf("unexpected token %q", result.Token)
	}
	if result.User.ID != 3 || result.User.Name != "Ana" || result.User.Email != "ana@example.com" {
		t.Errorf("unexpected user %+v", result.User)
	}
	if result.User.Password != "" {
		t.Error("password hash leaked into login result")
	}
	if len(issuer.issued) != 1 || issuer.issued[0] != (auth.Identity{UserID: 3, Email: "ana@example.com"}) {
		t.Errorf("unexpected issued identities %+v", issuer.issued)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectUserFragment)).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	issuer := &fakeIssuer{}
	svc := NewAuthService(zerolog.Nop(), mock, issuer)

	_, err := svc.Login(context.Background(), LoginParams{Email: "nobody@example.com", Password: "x"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(issuer.issued) != 0 {
		t.Error("token issued for unknown user")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse", auth.AlgorithmBcrypt)
	if err != nil {
		t.Fatal(err)
	}

	mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectUserFragment)).
		WithArgs("ana@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password"}).
			AddRow(int64(3), "Ana", hash))

	issuer := &fakeIssuer{}
	svc := NewAuthService(zerolog.Nop(), mock, issuer)

	_, err = svc.Login(context.Background(), LoginParams{Email: "ana@example.com", Password: "battery-staple"})
	if !errors.Is(err, ErrUserPasswordMismatch) {
		t.Fatalf("expected ErrUserPasswordMismatch, got %v", err)
	}
	if len(issuer.issued) != 0 {
		t.Error("token issued for wrong password")
	}
}

func TestLoginStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectUserFragment)).
		WithArgs("ana@example.com").
		WillReturnError(storeErr)

	svc := NewAuthService(zerolog.Nop(), mock, &fakeIssuer{})

	_, err := svc.Login(context.Background(), LoginParams{Email: "ana@example.com", Password: "x"})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrUserPasswordMismatch) {
		t.Fatal("store failure reported as bad credentials")
	}
}
