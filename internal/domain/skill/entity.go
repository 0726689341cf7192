package skill

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("skill not found")

// Type tells whether a user teaches a skill or wants to learn it.
type Type string

const (
	TypeOffered Type = "offered"
	TypeWanted  Type = "wanted"
)

func (t Type) Valid() bool {
	return t == TypeOffered || t == TypeWanted
}

type Skill struct {
	ID              uuid.UUID
	Name            string
	Category        string
	DifficultyLevel string
	CreatedAt       time.Time
}

type UserSkill struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	SkillType        Type
	ProficiencyLevel int
	CreatedAt        time.Time
}
