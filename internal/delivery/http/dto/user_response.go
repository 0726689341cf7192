package dto

import (
	"time"

	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Availability  string    `json:"availability"`
	Rating        float64   `json:"rating"`
	SkillsOffered []string  `json:"skills_offered,omitempty"`
	SkillsWanted  []string  `json:"skills_wanted,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ProfileResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	SkillsOffered []string  `json:"skills_offered"`
	SkillsWanted  []string  `json:"skills_wanted"`
}

func NewUserResponse(u user.User, offered, wanted []string) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Location:      u.Location,
		Availability:  u.Availability,
		Rating:        u.Rating,
		SkillsOffered: offered,
		SkillsWanted:  wanted,
		CreatedAt:     u.CreatedAt,
	}
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	offered := p.SkillsOffered
	if offered == nil {
		offered = []string{}
	}
	wanted := p.SkillsWanted
	if wanted == nil {
		wanted = []string{}
	}
	return ProfileResponse{ID: p.ID, Name: p.Name, Location: p.Location, SkillsOffered: offered, SkillsWanted: wanted}
}

// UserSkillResponse is one offered or wanted entry on the caller's profile.
type UserSkillResponse struct {
	ID               uuid.UUID `json:"id"`
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	SkillType        string    `json:"skill_type"`
	ProficiencyLevel int       `json:"proficiency_level"`
}
