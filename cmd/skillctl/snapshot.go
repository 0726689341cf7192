package main

import (
	"fmt"
	"os"
	"sort"

	"skill-swap/internal/domain/user"
	"skill-swap/internal/search"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type snapshotUser struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Location      string   `yaml:"location,omitempty"`
	SkillsOffered []string `yaml:"skills_offered"`
	SkillsWanted  []string `yaml:"skills_wanted"`
}

type snapshotFile struct {
	Users   []snapshotUser `yaml:"users"`
	Catalog []string       `yaml:"catalog,omitempty"`
}

// Snapshot is the in-memory form of a snapshot file. An omitted catalog
// falls back to the built-in categorized skills.
type Snapshot struct {
	Users   []user.Profile
	Catalog []string
}

func LoadSnapshot(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	return ParseSnapshot(raw)
}

func ParseSnapshot(raw []byte) (Snapshot, error) {
	var f snapshotFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}

	users := make([]user.Profile, 0, len(f.Users))
	for i, u := range f.Users {
		id, err := uuid.Parse(u.ID)
		if err != nil {
			return Snapshot{}, fmt.Errorf("users[%d].id: %w", i, err)
		}
		users = append(users, user.Profile{
			ID:            id,
			Name:          u.Name,
			Location:      u.Location,
			SkillsOffered: nonNil(u.SkillsOffered),
			SkillsWanted:  nonNil(u.SkillsWanted),
		})
	}
	if err := user.ValidateProfiles(users); err != nil {
		return Snapshot{}, err
	}

	catalog := f.Catalog
	if len(catalog) == 0 {
		catalog = defaultCatalog()
	}
	if err := user.ValidateSkills("catalog", catalog); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Users: users, Catalog: catalog}, nil
}

func defaultCatalog() []string {
	out := make([]string, 0)
	for _, skills := range search.CategorizedSkills() {
		out = append(out, skills...)
	}
	sort.Strings(out)
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func (s Snapshot) profile(rawID string) (user.Profile, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return user.Profile{}, fmt.Errorf("invalid user id %q: %w", rawID, err)
	}
	for _, p := range s.Users {
		if p.ID == id {
			return p, nil
		}
	}
	return user.Profile{}, fmt.Errorf("%w: %s", user.ErrNotFound, id)
}
