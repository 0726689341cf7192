package repository

import (
	"context"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileQuery = `SELECT u.id, u.name, u.location, s.name, us.skill_type
	 FROM users u
	 LEFT JOIN user_skills us ON us.user_id = u.id
	 LEFT JOIN skills s ON s.id = us.skill_id`

const profileOrder = ` ORDER BY u.created_at ASC, u.id ASC, us.created_at ASC, s.name ASC`

// ListProfiles returns every user with their offered and wanted skill names,
// ordered by registration time.
func (r *PostgresProfileRepository) ListProfiles(ctx context.Context) ([]user.Profile, error) {
	rows, err := r.db.Query(ctx, profileQuery+profileOrder)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func (r *PostgresProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (user.Profile, error) {
	rows, err := r.db.Query(ctx, profileQuery+` WHERE u.id = $1`+profileOrder, id)
	if err != nil {
		return user.Profile{}, err
	}
	out, err := collectProfiles(rows)
	if err != nil {
		return user.Profile{}, err
	}
	if len(out) == 0 {
		return user.Profile{}, user.ErrNotFound
	}
	return out[0], nil
}

func collectProfiles(rows database.Rows) ([]user.Profile, error) {
	defer rows.Close()

	out := make([]user.Profile, 0)
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			location  string
			skillName *string
			skillType *string
		)
		if err := rows.Scan(&id, &name, &location, &skillName, &skillType); err != nil {
			return nil, err
		}

		i, ok := index[id]
		if !ok {
			i = len(out)
			index[id] = i
			out = append(out, user.Profile{
				ID:            id,
				Name:          name,
				Location:      location,
				SkillsOffered: []string{},
				SkillsWanted:  []string{},
			})
		}
		if skillName == nil || skillType == nil {
			continue
		}
		switch skill.Type(*skillType) {
		case skill.TypeOffered:
			out[i].SkillsOffered = append(out[i].SkillsOffered, *skillName)
		case skill.TypeWanted:
			out[i].SkillsWanted = append(out[i].SkillsWanted, *skillName)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
