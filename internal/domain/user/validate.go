package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a malformed record handed to the matching core.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

func NewInvalidInputError(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

func ValidateProfile(p Profile) error {
	if p.ID == uuid.Nil {
		return NewInvalidInputError("id", "must not be nil")
	}
	if err := ValidateSkills("skills_offered", p.SkillsOffered); err != nil {
		return err
	}
	return ValidateSkills("skills_wanted", p.SkillsWanted)
}

func ValidateProfiles(ps []Profile) error {
	seen := make(map[uuid.UUID]struct{}, len(ps))
	for i, p := range ps {
		if err := ValidateProfile(p); err != nil {
			var ie *InvalidInputError
			if errors.As(err, &ie) {
				return NewInvalidInputError(fmt.Sprintf("users[%d].%s", i, ie.Field), ie.Reason)
			}
			return err
		}
		if _, ok := seen[p.ID]; ok {
			return NewInvalidInputError(fmt.Sprintf("users[%d].id", i), "duplicate id "+p.ID.String())
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func ValidateSkills(field string, skills []string) error {
	for i, s := range skills {
		if strings.TrimSpace(s) == "" {
			return NewInvalidInputError(fmt.Sprintf("%s[%d]", field, i), "blank skill name")
		}
	}
	return nil
}
