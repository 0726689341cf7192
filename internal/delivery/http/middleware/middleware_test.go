package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skill-swap/internal/domain/user"
	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func newTestApp(logs *bytes.Buffer, jwtSvc jwt.Service) *fiber.App {
	logger := log.New(logs, "", 0)
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(logger).Middleware())
	app.Use(NewErrorMiddleware(logger).Middleware())

	app.Get("/panic", func(c fiber.Ctx) error { panic("boom") })
	app.Get("/invalid", func(c fiber.Ctx) error {
		return fmt.Errorf("wrapped: %w", user.NewInvalidInputError("top_n", "must not be negative"))
	})
	app.Get("/internal", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db exploded", nil, errors.New("secret detail"))
	})
	app.Get("/me", NewAuthMiddleware(jwtSvc).Middleware(), func(c fiber.Ctx) error {
		id, _ := UserID(c)
		return response.Success(c, fiber.StatusOK, response.MessageOK, id.String())
	})
	return app
}

func decode(t *testing.T, app *fiber.App, path, token string) (response.SemanticResponse, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	var sr response.SemanticResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		t.Fatalf("decode %s: %v (%s)", path, err, body)
	}
	if sr.Status != resp.StatusCode {
		t.Fatalf("envelope status %d != http status %d", sr.Status, resp.StatusCode)
	}
	return sr, resp.Header.Get(response.HeaderRequestID)
}

func TestErrorMiddleware(t *testing.T) {
	var logs bytes.Buffer
	app := newTestApp(&logs, jwt.NewHMACService("a", "r", time.Minute, time.Hour))

	sr, rid := decode(t, app, "/panic", "")
	if sr.Status != 500 || sr.RequestID == "" || sr.RequestID != rid {
		t.Fatalf("panic: unexpected response %+v (rid=%s)", sr, rid)
	}
	if !strings.Contains(logs.String(), "HTTP panic recovered") {
		t.Fatalf("expected panic to be logged, got %q", logs.String())
	}

	sr, _ = decode(t, app, "/invalid", "")
	data, _ := sr.Data.(map[string]any)
	if sr.Status != 400 || data["field"] != "top_n" {
		t.Fatalf("invalid input: unexpected response %+v", sr)
	}

	sr, _ = decode(t, app, "/internal", "")
	if sr.Status != 500 || sr.Message != response.MessageInternalServerError {
		t.Fatalf("internal: unexpected response %+v", sr)
	}
	if !strings.Contains(logs.String(), "secret detail") {
		t.Fatalf("expected cause in logs")
	}
}

func TestAuthMiddleware(t *testing.T) {
	var logs bytes.Buffer
	svc := jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	app := newTestApp(&logs, svc)
	id := uuid.New()

	access, err := svc.GenerateAccessToken(id, "a@example.com")
	if err != nil {
		t.Fatalf("access token: %v", err)
	}
	refresh, err := svc.GenerateRefreshToken(id)
	if err != nil {
		t.Fatalf("refresh token: %v", err)
	}

	sr, _ := decode(t, app, "/me", access)
	if sr.Status != 200 || sr.Data != id.String() {
		t.Fatalf("access: unexpected response %+v", sr)
	}
	if !strings.Contains(logs.String(), "user="+id.String()) {
		t.Fatalf("expected caller in access log, got %q", logs.String())
	}

	for name, tok := range map[string]string{"missing": "", "refresh": refresh, "garbage": "not-a-jwt"} {
		sr, _ := decode(t, app, "/me", tok)
		if sr.Status != 401 {
			t.Fatalf("%s: expected 401, got %+v", name, sr)
		}
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"Bearer":       "",
		"":             "",
	}
	for in, want := range cases {
		got, ok := BearerToken(in)
		if got != want || ok != (want != "") {
			t.Fatalf("BearerToken(%q) = %q,%v want %q", in, got, ok, want)
		}
	}
}
