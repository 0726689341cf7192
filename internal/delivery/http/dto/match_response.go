package dto

import (
	"skill-swap/internal/domain/matching"

	"github.com/google/uuid"
)

type RecommendationResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	SimilarityScore float64   `json:"similarity_score"`
	Skills          []string  `json:"skills"`
	Location        string    `json:"location"`
}

type SkillDemandResponse struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

func NewRecommendationResponses(items []matching.RecommendationEntry) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(items))
	for _, it := range items {
		skills := it.Skills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, RecommendationResponse{
			UserID:          it.UserID,
			Name:            it.Name,
			SimilarityScore: it.SimilarityScore,
			Skills:          skills,
			Location:        it.Location,
		})
	}
	return out
}

func NewSkillDemandResponses(items []matching.SkillDemand) []SkillDemandResponse {
	out := make([]SkillDemandResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SkillDemandResponse{Skill: it.Skill, Count: it.Count})
	}
	return out
}
