package main

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

func writeOutput(w io.Writer, format string, v any) error {
	if format == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type recommendationView struct {
	UserID          string   `json:"user_id" yaml:"user_id"`
	Name            string   `json:"name" yaml:"name"`
	SimilarityScore float64  `json:"similarity_score" yaml:"similarity_score"`
	Skills          []string `json:"skills" yaml:"skills"`
	Location        string   `json:"location" yaml:"location"`
}

type demandView struct {
	Skill string `json:"skill" yaml:"skill"`
	Count int    `json:"count" yaml:"count"`
}

type matchView struct {
	Skill      string `json:"skill" yaml:"skill"`
	Confidence int    `json:"confidence" yaml:"confidence"`
	Category   string `json:"category" yaml:"category"`
}

type suggestionView struct {
	Skill     string `json:"skill" yaml:"skill"`
	MatchType string `json:"match_type" yaml:"match_type"`
	Category  string `json:"category" yaml:"category"`
}

type userMatchView struct {
	UserID       string `json:"user_id" yaml:"user_id"`
	Name         string `json:"name" yaml:"name"`
	MatchedSkill string `json:"matched_skill" yaml:"matched_skill"`
	Confidence   int    `json:"confidence" yaml:"confidence"`
}

type pathView struct {
	Skill        string  `json:"skill" yaml:"skill"`
	Prerequisite *string `json:"prerequisite" yaml:"prerequisite"`
	Difficulty   string  `json:"difficulty" yaml:"difficulty"`
	Reason       string  `json:"reason" yaml:"reason"`
}

type swapView struct {
	UserA       string  `json:"user_a" yaml:"user_a"`
	UserB       string  `json:"user_b" yaml:"user_b"`
	Probability float64 `json:"probability" yaml:"probability"`
}

type catalogView struct {
	Catalog []string `json:"catalog" yaml:"catalog"`
}
