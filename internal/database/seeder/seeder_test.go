package seeder

import (
	"bytes"
	"context"
	"database/sql"
	"log"
	"strings"
	"testing"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/learning"
	"skill-swap/internal/search"
)

func TestSeedSkills(t *testing.T) {
	items := seedSkills()
	byName := make(map[string]skillSeed, len(items))
	for i, it := range items {
		if i > 0 && items[i-1].Name >= it.Name {
			t.Fatalf("expected sorted unique names at idx=%d", i)
		}
		byName[it.Name] = it
	}

	for _, name := range []string{"Python", "Figma", "SEO", "Django", "DevOps", "Database Administration", "HTML/CSS"} {
		if _, ok := byName[name]; !ok {
			t.Fatalf("expected %s to be seeded", name)
		}
	}
	if byName["Python"].Category != search.CategoryProgramming {
		t.Fatalf("unexpected category for Python: %s", byName["Python"].Category)
	}
	if byName["Machine Learning"].Difficulty != learning.DifficultyAdvanced {
		t.Fatalf("unexpected difficulty for Machine Learning: %s", byName["Machine Learning"].Difficulty)
	}
}

type fakeRows struct {
	vals []string
	idx  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx <= len(r.vals)
}
func (r *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.vals[r.idx-1]
	return nil
}

type fakeDB struct {
	columns   []string
	names     map[string]struct{}
	committed bool
}

func (d *fakeDB) Ping(context.Context) error { return nil }
func (d *fakeDB) Close() error               { return nil }
func (d *fakeDB) SQLDB() *sql.DB             { return nil }
func (d *fakeDB) Begin(context.Context) (database.Tx, error) {
	return d, nil
}
func (d *fakeDB) Commit(context.Context) error   { d.committed = true; return nil }
func (d *fakeDB) Rollback(context.Context) error { return nil }
func (d *fakeDB) Query(_ context.Context, _ string, _ ...any) (database.Rows, error) {
	return &fakeRows{vals: d.columns}, nil
}
func (d *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (d *fakeDB) Exec(_ context.Context, _ string, args ...any) (int64, error) {
	name := args[0].(string)
	if _, ok := d.names[name]; ok {
		return 0, nil
	}
	d.names[name] = struct{}{}
	return 1, nil
}

func TestSkillsSeeder_Idempotent(t *testing.T) {
	db := &fakeDB{
		columns: []string{"id", "name", "category", "difficulty_level", "created_at"},
		names:   map[string]struct{}{"Python": {}},
	}

	n, err := SkillsSeeder{}.Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
	if want := int64(len(seedSkills()) - 1); n != want || !db.committed {
		t.Fatalf("expected %d inserted and commit, got %d (committed=%v)", want, n, db.committed)
	}

	var logs bytes.Buffer
	r := Runner{Seeders: Defaults(), Logger: log.New(&logs, "", 0)}
	if err := r.Run(context.Background(), db); err != nil {
		t.Fatalf("second run error: %v", err)
	}
	if !strings.Contains(logs.String(), "name=skills inserted=0") {
		t.Fatalf("expected nothing inserted on rerun, got %q", logs.String())
	}
}

func TestSkillsSeeder_SchemaMismatch(t *testing.T) {
	db := &fakeDB{columns: []string{"id", "name"}, names: map[string]struct{}{}}

	_, err := SkillsSeeder{}.Seed(context.Background(), db)
	if err == nil || !strings.Contains(err.Error(), "category, difficulty_level, created_at") {
		t.Fatalf("expected all missing columns in error, got %v", err)
	}
}
