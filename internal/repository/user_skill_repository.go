package repository

import (
	"context"
	"errors"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserSkillNotFound  = errors.New("user skill not found")
	ErrUserSkillForbidden = errors.New("forbidden")
)

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.UserSkill, error)
	HasSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID, skillType skill.Type) (bool, error)
	Create(ctx context.Context, us skill.UserSkill) (skill.UserSkill, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

const userSkillSelect = `SELECT us.id, us.user_id, us.skill_id, s.name, us.skill_type, us.proficiency_level, us.created_at
	 FROM user_skills us
	 JOIN skills s ON s.id = us.skill_id`

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.UserSkill, error) {
	rows, err := r.db.Query(ctx, userSkillSelect+` WHERE us.user_id = $1 ORDER BY us.skill_type ASC, s.name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.UserSkill, 0)
	for rows.Next() {
		us, err := scanUserSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) HasSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID, skillType skill.Type) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_skills WHERE user_id = $1 AND skill_id = $2 AND skill_type = $3)`,
		userID, skillID, string(skillType),
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserSkillRepository) Create(ctx context.Context, us skill.UserSkill) (skill.UserSkill, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id, skill_type, proficiency_level)
		 VALUES ($1, $2, $3, $4, $5)`,
		us.ID, us.UserID, us.SkillID, string(us.SkillType), us.ProficiencyLevel,
	)
	if err != nil {
		return skill.UserSkill{}, err
	}

	row := r.db.QueryRow(ctx, userSkillSelect+` WHERE us.id = $1 AND us.user_id = $2`, us.ID, us.UserID)
	created, err := scanUserSkill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skill.UserSkill{}, ErrUserSkillNotFound
		}
		return skill.UserSkill{}, err
	}
	return created, nil
}

func (r *PostgresUserSkillRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	var owner uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT user_id FROM user_skills WHERE id = $1`, id)
	if err := row.Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserSkillNotFound
		}
		return err
	}
	if owner != userID {
		return ErrUserSkillForbidden
	}

	_, err := r.db.Exec(ctx, `DELETE FROM user_skills WHERE id = $1`, id)
	return err
}

func scanUserSkill(row database.Row) (skill.UserSkill, error) {
	var (
		us  skill.UserSkill
		typ string
	)
	if err := row.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &typ, &us.ProficiencyLevel, &us.CreatedAt); err != nil {
		return skill.UserSkill{}, err
	}
	us.SkillType = skill.Type(typ)
	return us, nil
}
