package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"skill-swap/internal/app"
	"skill-swap/internal/config"
	"skill-swap/internal/database"
	"skill-swap/internal/database/migration"
	dbpostgres "skill-swap/internal/database/postgres"
	"skill-swap/internal/database/seeder"
	"skill-swap/migrations"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID uuid.UUID `json:"id"`
	} `json:"user"`
}

type userSkillItem struct {
	ID        uuid.UUID `json:"id"`
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	SkillType string    `json:"skill_type"`
}

type recommendationItem struct {
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	SimilarityScore float64   `json:"similarity_score"`
	Skills          []string  `json:"skills"`
}

type swapItem struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type testUser struct {
	id    uuid.UUID
	token string
}

func TestIntegration_Register_Match_Swap(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
		t.Fatalf("run seeders: %v", err)
	}

	fiberApp := newTestFiberApp(t, db)

	suffix := uuid.NewString()[:8]
	alice := register(t, fiberApp, "alice-"+suffix+"@example.com", "Alice "+suffix)
	bob := register(t, fiberApp, "bob-"+suffix+"@example.com", "Bob "+suffix)
	defer cleanupUsers(t, ctx, db, alice.id, bob.id)

	aliceGo := addSkill(t, fiberApp, alice.token, "Go", "offered")
	addSkill(t, fiberApp, alice.token, "Python", "wanted")
	bobPython := addSkill(t, fiberApp, bob.token, "Python", "offered")
	addSkill(t, fiberApp, bob.token, "Go", "wanted")

	var recs []recommendationItem
	call(t, fiberApp, "GET", "/api/v1/matches/recommendations?top_n=1000", alice.token, nil, 200, &recs)
	assertSortedByScoreDesc(t, recs)
	found := false
	for _, r := range recs {
		if r.UserID == bob.id {
			found = true
			if r.SimilarityScore != 1 {
				t.Fatalf("recommendations: expected bob score 1, got %v", r.SimilarityScore)
			}
		}
		if r.UserID == alice.id {
			t.Fatalf("recommendations: requester must not recommend themselves")
		}
	}
	if !found {
		t.Fatalf("recommendations: expected bob in results")
	}

	var created swapItem
	call(t, fiberApp, "POST", "/api/v1/swaps", alice.token, map[string]any{
		"target_id":          bob.id,
		"requester_skill_id": aliceGo.SkillID,
		"target_skill_id":    bobPython.SkillID,
		"message":            "Go for Python?",
	}, 200, &created)
	if created.Status != "pending" {
		t.Fatalf("swap create: expected pending, got %s", created.Status)
	}

	call(t, fiberApp, "POST", "/api/v1/swaps/"+created.ID.String()+"/accept", alice.token, nil, 403, nil)

	var accepted swapItem
	call(t, fiberApp, "POST", "/api/v1/swaps/"+created.ID.String()+"/accept", bob.token, nil, 200, &accepted)
	if accepted.Status != "accepted" {
		t.Fatalf("swap accept: expected accepted, got %s", accepted.Status)
	}

	call(t, fiberApp, "POST", "/api/v1/swaps/"+created.ID.String()+"/cancel", alice.token, nil, 409, nil)

	var listed []swapItem
	call(t, fiberApp, "GET", "/api/v1/swaps", bob.token, nil, 200, &listed)
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("swap list: expected the created swap, got %+v", listed)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("SKILLSWAP_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("SKILLSWAP_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("SKILLSWAP_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("SKILLSWAP_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("SKILLSWAP_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("SKILLSWAP_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set SKILLSWAP_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	if _, err := (migration.Runner{FS: migrations.FS}).Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func newTestFiberApp(t *testing.T, db database.DB) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{AppName: "SkillSwap", Environment: "test", HTTPPort: "0"},
		JWT: config.JWTConfig{
			AccessSecret:     stringsOrDefault(os.Getenv("SKILLSWAP_TEST_JWT_ACCESS_SECRET"), "test-access-secret"),
			RefreshSecret:    stringsOrDefault(os.Getenv("SKILLSWAP_TEST_JWT_REFRESH_SECRET"), "test-refresh-secret"),
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
		Matching: config.MatchingConfig{DefaultTopN: 10, SearchThreshold: 70, SuggestLimit: 5, UserSearchCutoff: 70},
	}
	c := app.NewContainerWithDB(cfg, log.New(io.Discard, "", 0), db)
	return app.New(c).Fiber
}

func register(t *testing.T, fiberApp *fiber.App, email, name string) testUser {
	t.Helper()

	var data authData
	call(t, fiberApp, "POST", "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": "password123",
		"name":     name,
	}, 200, &data)
	if data.AccessToken == "" || data.User.ID == uuid.Nil {
		t.Fatalf("register %s: missing token or user id", email)
	}
	return testUser{id: data.User.ID, token: data.AccessToken}
}

func addSkill(t *testing.T, fiberApp *fiber.App, token, name, skillType string) userSkillItem {
	t.Helper()

	var item userSkillItem
	call(t, fiberApp, "POST", "/api/v1/users/me/skills", token, map[string]any{
		"skill_name": name,
		"skill_type": skillType,
	}, 200, &item)
	if item.SkillName != name || item.SkillType != skillType {
		t.Fatalf("add skill: unexpected item %+v", item)
	}
	return item
}

func call(t *testing.T, fiberApp *fiber.App, method, path, token string, body any, wantStatus int, out any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := fiberApp.Test(req)
	if err != nil {
		t.Fatalf("%s %s: request error: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s: decode error: %v", method, path, err)
	}
	if sr.Status != wantStatus {
		t.Fatalf("%s %s: expected status=%d, got %d (message=%s)", method, path, wantStatus, sr.Status, sr.Message)
	}
	if out != nil {
		if err := json.Unmarshal(sr.Data, out); err != nil {
			t.Fatalf("%s %s: data unmarshal error: %v", method, path, err)
		}
	}
}

func assertSortedByScoreDesc(t *testing.T, items []recommendationItem) {
	t.Helper()

	for i := 1; i < len(items); i++ {
		if items[i].SimilarityScore > items[i-1].SimilarityScore {
			t.Fatalf("recommendations: expected similarity_score descending at idx=%d: prev=%v cur=%v", i, items[i-1].SimilarityScore, items[i].SimilarityScore)
		}
	}
}

func cleanupUsers(t *testing.T, ctx context.Context, db database.DB, ids ...uuid.UUID) {
	t.Helper()

	for _, id := range ids {
		_, _ = db.Exec(ctx, `DELETE FROM swap_requests WHERE requester_id = $1 OR target_id = $1`, id)
		_, _ = db.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, id)
		_, _ = db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	}
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
