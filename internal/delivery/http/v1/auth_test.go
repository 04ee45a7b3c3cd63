package v1

import (
	"errors"
	"net/http"
	"testing"
)

func TestHandleLogin(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ana@example.com",
		"password": "correct-horse",
	})
	assertStatus(t, w, http.StatusOK)

	body := decode[loginResponse](t, w)
	if body.User.ID != userA || body.User.Name != "Ana" || body.User.Email != "ana@example.com" {
		t.Errorf("unexpected user %+v", body.User)
	}

	identity, err := s.tokens.Validate(body.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if identity.UserID != userA || identity.Email != "ana@example.com" {
		t.Errorf("unexpected token identity %+v", identity)
	}

	w = s.do(t, http.MethodGet, "/api/tasks", body.Token, nil)
	assertStatus(t, w, http.StatusOK)
}

func TestHandleLoginBadCredentials(t *testing.T) {
	s := newTestServer(t)

	for name, req := range map[string]map[string]string{
		"unknown user":   {"email": "nobody@example.com", "password": "correct-horse"},
		"wrong password": {"email": "ana@example.com", "password": "battery-staple"},
	} {
		w := s.do(t, http.MethodPost, "/api/login", "", req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, w.Code)
			continue
		}
		assertErrorBody(t, w)
	}
}

func TestHandleLoginMalformedBody(t *testing.T) {
	s := newTestServer(t)

	for name, req := range map[string]map[string]string{
		"missing password": {"email": "ana@example.com"},
		"invalid email":    {"email": "ana", "password": "x"},
	} {
		w := s.do(t, http.MethodPost, "/api/login", "", req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, w.Code)
		}
	}
}

func TestHandleLoginStoreFailure(t *testing.T) {
	s := newTestServer(t)
	s.login.err = errors.New("dial tcp 10.0.0.5:5432: connection refused")

	w := s.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ana@example.com",
		"password": "correct-horse",
	})
	assertStatus(t, w, http.StatusInternalServerError)

	body := decode[map[string]string](t, w)
	if body["error"] != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("internal detail leaked: %q", body["error"])
	}
}
