package repository

import (
	"context"
	"errors"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/learning"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/search"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]skill.Skill, error)
	CreateSkill(ctx context.Context, name string) (skill.Skill, error)
	FindByName(ctx context.Context, name string) (skill.Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	EnsureSkill(ctx context.Context, name string) (skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, name, category, difficulty_level, created_at`

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.DifficultyLevel, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSkill inserts a catalog entry classified by the static category and
// difficulty tables.
func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, name string) (skill.Skill, error) {
	s := skill.Skill{
		ID:              uuid.New(),
		Name:            name,
		Category:        string(search.Categorize(name)),
		DifficultyLevel: string(learning.SkillDifficulty(name)),
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name, category, difficulty_level) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		s.ID, s.Name, s.Category, s.DifficultyLevel,
	)
	if err := row.Scan(&s.CreatedAt); err != nil {
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) FindByName(ctx context.Context, name string) (skill.Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE name = $1`, name)
	return scanSkill(row)
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	return scanSkill(row)
}

// EnsureSkill returns the skill with the given name, creating it when missing.
func (r *PostgresSkillRepository) EnsureSkill(ctx context.Context, name string) (skill.Skill, error) {
	s, err := r.FindByName(ctx, name)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, skill.ErrNotFound) {
		return skill.Skill{}, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO skills (id, name, category, difficulty_level) VALUES ($1, $2, $3, $4) ON CONFLICT (name) DO NOTHING`,
		uuid.New(), name, string(search.Categorize(name)), string(learning.SkillDifficulty(name)),
	)
	if err != nil {
		return skill.Skill{}, err
	}
	return r.FindByName(ctx, name)
}

func scanSkill(row database.Row) (skill.Skill, error) {
	var s skill.Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.DifficultyLevel, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, skill.ErrNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}
