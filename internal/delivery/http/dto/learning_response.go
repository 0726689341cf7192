package dto

import (
	"skill-swap/internal/domain/learning"

	"github.com/google/uuid"
)

type LearningRecommendationResponse struct {
	Skill        string  `json:"skill"`
	Prerequisite *string `json:"prerequisite"`
	Difficulty   string  `json:"difficulty"`
	Reason       string  `json:"reason"`
}

type SwapSuccessResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	OtherUserID uuid.UUID `json:"other_user_id"`
	Probability float64   `json:"probability"`
}

func NewLearningRecommendationResponses(items []learning.Recommendation) []LearningRecommendationResponse {
	out := make([]LearningRecommendationResponse, 0, len(items))
	for _, it := range items {
		var pre *string
		if it.Prerequisite != "" {
			p := it.Prerequisite
			pre = &p
		}
		out = append(out, LearningRecommendationResponse{
			Skill:        it.Skill,
			Prerequisite: pre,
			Difficulty:   string(it.Difficulty),
			Reason:       it.Reason,
		})
	}
	return out
}
