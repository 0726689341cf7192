package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skill-swap/internal/domain/user"

	"gopkg.in/yaml.v3"
)

const (
	aliceID = "11111111-1111-1111-1111-111111111111"
	bobID   = "22222222-2222-2222-2222-222222222222"
	carolID = "33333333-3333-3333-3333-333333333333"
)

const testSnapshot = `
users:
  - id: ` + aliceID + `
    name: Alice
    location: Jakarta
    skills_offered: [Go]
    skills_wanted: [Python]
  - id: ` + bobID + `
    name: Bob
    skills_offered: [Python]
    skills_wanted: [Go]
  - id: ` + carolID + `
    name: Carol
    skills_offered: [Docker]
    skills_wanted: [Python]
catalog: [Python, PyTorch, Go, Docker]
`

func writeSnapshot(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseSnapshot(t *testing.T) {
	snap, err := ParseSnapshot([]byte(testSnapshot))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(snap.Users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(snap.Users))
	}
	if snap.Users[1].Location != "" || snap.Users[1].SkillsOffered[0] != "Python" {
		t.Fatalf("unexpected bob profile: %+v", snap.Users[1])
	}
	if len(snap.Catalog) != 4 || snap.Catalog[0] != "Python" {
		t.Fatalf("unexpected catalog: %v", snap.Catalog)
	}
}

func TestParseSnapshotDefaultsAndErrors(t *testing.T) {
	snap, err := ParseSnapshot([]byte("users:\n  - id: " + aliceID + "\n    name: Alice\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if snap.Users[0].SkillsOffered == nil || snap.Users[0].SkillsWanted == nil {
		t.Fatalf("expected non-nil skill lists")
	}
	if len(snap.Catalog) == 0 {
		t.Fatalf("expected built-in catalog when none is given")
	}

	if _, err := ParseSnapshot([]byte("users:\n  - id: nope\n")); err == nil {
		t.Fatalf("expected error for invalid id")
	}

	dup := "users:\n  - id: " + aliceID + "\n  - id: " + aliceID + "\n"
	_, err = ParseSnapshot([]byte(dup))
	var ie *user.InvalidInputError
	if !errors.As(err, &ie) || ie.Field != "users[1].id" {
		t.Fatalf("expected duplicate id error, got %v", err)
	}

	blank := "users:\n  - id: " + aliceID + "\n    skills_wanted: [\"  \"]\n"
	if _, err := ParseSnapshot([]byte(blank)); !errors.Is(err, user.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank skill, got %v", err)
	}
}

func TestRecommendCommand(t *testing.T) {
	path := writeSnapshot(t, testSnapshot)

	out, err := runCLI(t, "recommend", aliceID, "-s", path, "-o", "json", "-n", "1")
	if err != nil {
		t.Fatalf("recommend error: %v", err)
	}
	var got []recommendationView
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0].Name != "Bob" || got[0].SimilarityScore != 1 {
		t.Fatalf("unexpected recommendations: %+v", got)
	}
	if got[0].Location != "Not specified" {
		t.Fatalf("expected placeholder location, got %q", got[0].Location)
	}

	if _, err := runCLI(t, "recommend", "not-a-uuid", "-s", path, "-o", "json"); err == nil {
		t.Fatalf("expected error for invalid user id")
	}
}

func TestDemandCommandYAML(t *testing.T) {
	path := writeSnapshot(t, testSnapshot)

	out, err := runCLI(t, "demand", "-s", path, "-o", "yaml")
	if err != nil {
		t.Fatalf("demand error: %v", err)
	}
	var got []demandView
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(got) != 2 || got[0].Skill != "Python" || got[0].Count != 2 || got[1].Skill != "Go" {
		t.Fatalf("unexpected demand: %+v", got)
	}
}

func TestSearchCommands(t *testing.T) {
	path := writeSnapshot(t, testSnapshot)

	out, err := runCLI(t, "suggest", "py", "-s", path, "-o", "json", "-l", "5")
	if err != nil {
		t.Fatalf("suggest error: %v", err)
	}
	var sugg []suggestionView
	if err := json.Unmarshal([]byte(out), &sugg); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(sugg) < 2 || sugg[0].Skill != "Python" || sugg[1].Skill != "PyTorch" || sugg[0].MatchType != "exact_prefix" {
		t.Fatalf("unexpected suggestions: %+v", sugg)
	}

	out, err = runCLI(t, "users-by-skill", "python", "-s", path, "-o", "json", "-t", "70")
	if err != nil {
		t.Fatalf("users-by-skill error: %v", err)
	}
	var users []userMatchView
	if err := json.Unmarshal([]byte(out), &users); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(users) != 3 {
		t.Fatalf("expected every user to match python, got %+v", users)
	}

	if _, err := runCLI(t, "search", "python", "-s", path, "-o", "json", "-t", "101"); err == nil {
		t.Fatalf("expected error for out-of-range threshold")
	}
}

func TestSwapAndPathCommands(t *testing.T) {
	path := writeSnapshot(t, testSnapshot)

	out, err := runCLI(t, "swap", aliceID, bobID, "-s", path, "-o", "json")
	if err != nil {
		t.Fatalf("swap error: %v", err)
	}
	var swap swapView
	if err := json.Unmarshal([]byte(out), &swap); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if swap.Probability != 0.5 {
		t.Fatalf("expected probability 0.5, got %v", swap.Probability)
	}

	if _, err := runCLI(t, "swap", aliceID, aliceID, "-s", path, "-o", "json"); err == nil {
		t.Fatalf("expected error for self swap")
	}
	if _, err := runCLI(t, "swap", aliceID, "44444444-4444-4444-4444-444444444444", "-s", path, "-o", "json"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	out, err = runCLI(t, "path", "Python", "-o", "json")
	if err != nil {
		t.Fatalf("path error: %v", err)
	}
	if !strings.Contains(out, `"reason"`) {
		t.Fatalf("expected recommendations, got %s", out)
	}
}

func TestUnsupportedOutput(t *testing.T) {
	if _, err := runCLI(t, "gaps", "Go", "-o", "xml"); err == nil {
		t.Fatalf("expected error for unsupported output")
	}
	if _, err := runCLI(t, "gaps", "Go", "-o", "json"); err != nil {
		t.Fatalf("gaps error: %v", err)
	}
}
