package seeder

import (
	"context"
	"fmt"
	"sort"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/learning"
	"skill-swap/internal/search"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

type skillSeed struct {
	Name       string
	Category   search.Category
	Difficulty learning.Difficulty
}

// seedSkills collects every skill named by the category, progression and
// market tables, sorted by name.
func seedSkills() []skillSeed {
	names := map[string]struct{}{}
	for _, skills := range search.CategorizedSkills() {
		for _, s := range skills {
			names[s] = struct{}{}
		}
	}
	for _, s := range learning.DefaultMarketSkills() {
		names[s] = struct{}{}
		for _, next := range learning.NextSkills(s) {
			names[next] = struct{}{}
		}
	}
	for _, s := range []string{"HTML/CSS", "SQL"} {
		names[s] = struct{}{}
		for _, next := range learning.NextSkills(s) {
			names[next] = struct{}{}
		}
	}

	out := make([]skillSeed, 0, len(names))
	for n := range names {
		out = append(out, skillSeed{Name: n, Category: search.Categorize(n), Difficulty: learning.SkillDifficulty(n)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (SkillsSeeder) Seed(ctx context.Context, db database.DB) (int64, error) {
	if err := requireColumns(ctx, db, "skills", "id", "name", "category", "difficulty_level", "created_at"); err != nil {
		return 0, err
	}

	var inserted int64
	err := database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range seedSkills() {
			n, err := tx.Exec(ctx,
				`INSERT INTO skills (name, category, difficulty_level) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
				it.Name, string(it.Category), string(it.Difficulty),
			)
			if err != nil {
				return fmt.Errorf("insert %s: %w", it.Name, err)
			}
			inserted += n
		}
		return nil
	})
	return inserted, err
}
