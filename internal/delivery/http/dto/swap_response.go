package dto

import (
	"time"

	"skill-swap/internal/domain/swap"

	"github.com/google/uuid"
)

type SwapParticipant struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	SkillID uuid.UUID `json:"skill_id"`
	Skill   string    `json:"skill"`
}

type SwapResponse struct {
	ID        uuid.UUID       `json:"id"`
	Requester SwapParticipant `json:"requester"`
	Target    SwapParticipant `json:"target"`
	Message   string          `json:"message"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewSwapResponse(r swap.Request) SwapResponse {
	return SwapResponse{
		ID:        r.ID,
		Requester: SwapParticipant{ID: r.RequesterID, Name: r.RequesterName, SkillID: r.RequesterSkillID, Skill: r.RequesterSkill},
		Target:    SwapParticipant{ID: r.TargetID, Name: r.TargetName, SkillID: r.TargetSkillID, Skill: r.TargetSkill},
		Message:   r.Message,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func NewSwapResponses(items []swap.Request) []SwapResponse {
	out := make([]SwapResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewSwapResponse(it))
	}
	return out
}
