package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Location     string
	Availability string
	Rating       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the matching view of a user: who they are and which skills they
// offer and want. Skill names are compared exactly unless an operation says
// otherwise.
type Profile struct {
	ID            uuid.UUID
	Name          string
	Location      string
	SkillsOffered []string
	SkillsWanted  []string
}

// Skills returns offered followed by wanted skills.
func (p Profile) Skills() []string {
	out := make([]string, 0, len(p.SkillsOffered)+len(p.SkillsWanted))
	out = append(out, p.SkillsOffered...)
	out = append(out, p.SkillsWanted...)
	return out
}
