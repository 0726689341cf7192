package seeder

import (
	"context"
	"fmt"
	"log"

	"skill-swap/internal/database"
)

// Seeder inserts reference rows. Seeding must be idempotent; Seed reports
// how many rows it actually inserted.
type Seeder interface {
	Name() string
	Seed(ctx context.Context, db database.DB) (int64, error)
}

func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
	}
}

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		n, err := s.Seed(ctx, db)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("Seeder done | name=%s inserted=%d", s.Name(), n)
		}
	}
	return nil
}
