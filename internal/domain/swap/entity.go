package swap

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("swap request not found")

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Final reports whether no further transition is allowed from s.
func (s Status) Final() bool {
	return s != StatusPending
}

// Request is one user's proposal to trade a skill they offer for a skill the
// target offers.
type Request struct {
	ID               uuid.UUID
	RequesterID      uuid.UUID
	RequesterName    string
	TargetID         uuid.UUID
	TargetName       string
	RequesterSkillID uuid.UUID
	RequesterSkill   string
	TargetSkillID    uuid.UUID
	TargetSkill      string
	Message          string
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Counterpart returns the other participant of the request.
func (r Request) Counterpart(userID uuid.UUID) uuid.UUID {
	if userID == r.RequesterID {
		return r.TargetID
	}
	return r.RequesterID
}
