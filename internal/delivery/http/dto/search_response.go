package dto

import "skill-swap/internal/search"

type MatchResponse struct {
	Skill      string `json:"skill"`
	Confidence int    `json:"confidence"`
	Category   string `json:"category"`
}

type SuggestionResponse struct {
	Skill     string `json:"skill"`
	MatchType string `json:"match_type"`
	Category  string `json:"category"`
}

type UserMatchResponse struct {
	User         ProfileResponse `json:"user"`
	MatchedSkill string          `json:"matched_skill"`
	Confidence   int             `json:"confidence"`
}

func NewMatchResponses(items []search.Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, MatchResponse{Skill: it.Skill, Confidence: it.Confidence, Category: string(it.Category)})
	}
	return out
}

func NewSuggestionResponses(items []search.Suggestion) []SuggestionResponse {
	out := make([]SuggestionResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SuggestionResponse{Skill: it.Skill, MatchType: string(it.MatchType), Category: string(it.Category)})
	}
	return out
}

func NewUserMatchResponses(items []search.UserMatch) []UserMatchResponse {
	out := make([]UserMatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, UserMatchResponse{User: NewProfileResponse(it.User), MatchedSkill: it.MatchedSkill, Confidence: it.Confidence})
	}
	return out
}
