package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/domain/swap"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

const maxSwapMessageLen = 1000

// SwapEvent is pushed to the counterpart of a swap request on every state
// change.
type SwapEvent struct {
	Type      string    `json:"type"`
	SwapID    uuid.UUID `json:"swap_id"`
	Status    string    `json:"status"`
	FromUser  uuid.UUID `json:"from_user"`
	Timestamp string    `json:"timestamp"`
}

const (
	SwapEventRequested = "swap_requested"
	SwapEventUpdated   = "swap_updated"
)

type Notifier interface {
	NotifyUser(userID uuid.UUID, payload any)
}

type CreateSwapInput struct {
	TargetID         uuid.UUID
	RequesterSkillID uuid.UUID
	TargetSkillID    uuid.UUID
	Message          string
}

type SwapUsecase interface {
	Create(ctx context.Context, requesterID uuid.UUID, in CreateSwapInput) (swap.Request, error)
	List(ctx context.Context, userID uuid.UUID) ([]swap.Request, error)
	Accept(ctx context.Context, userID uuid.UUID, swapID uuid.UUID) (swap.Request, error)
	Reject(ctx context.Context, userID uuid.UUID, swapID uuid.UUID) (swap.Request, error)
	Cancel(ctx context.Context, userID uuid.UUID, swapID uuid.UUID) (swap.Request, error)
}

type Swap struct {
	swaps      repository.SwapRequestRepository
	userSkills repository.UserSkillRepository
	users      user.Repository
	notifier   Notifier
	logger     *log.Logger
	now        func() time.Time
}

func NewSwapUsecase(swaps repository.SwapRequestRepository, userSkills repository.UserSkillRepository, users user.Repository, notifier Notifier, logger *log.Logger) *Swap {
	if logger == nil {
		logger = log.Default()
	}
	return &Swap{swaps: swaps, userSkills: userSkills, users: users, notifier: notifier, logger: logger, now: time.Now}
}

// Create opens a pending request. The requester must offer the requester
// skill and the target must offer the target skill.
func (u *Swap) Create(ctx context.Context, requesterID uuid.UUID, in CreateSwapInput) (swap.Request, error) {
	if in.TargetID == uuid.Nil || in.RequesterSkillID == uuid.Nil || in.TargetSkillID == uuid.Nil {
		return swap.Request{}, ErrInvalidInput
	}
	if in.TargetID == requesterID {
		return swap.Request{}, ErrInvalidInput
	}
	msg := strings.TrimSpace(in.Message)
	if len(msg) > maxSwapMessageLen {
		return swap.Request{}, ErrInvalidInput
	}

	if _, err := u.users.GetUserByID(ctx, in.TargetID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return swap.Request{}, ErrUserNotFound
		}
		return swap.Request{}, ErrInternal
	}

	if err := u.requireOffered(ctx, requesterID, in.RequesterSkillID); err != nil {
		return swap.Request{}, err
	}
	if err := u.requireOffered(ctx, in.TargetID, in.TargetSkillID); err != nil {
		return swap.Request{}, err
	}

	created, err := u.swaps.Create(ctx, swap.Request{
		ID:               uuid.New(),
		RequesterID:      requesterID,
		TargetID:         in.TargetID,
		RequesterSkillID: in.RequesterSkillID,
		TargetSkillID:    in.TargetSkillID,
		Message:          msg,
		Status:           swap.StatusPending,
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return swap.Request{}, ErrSkillNotFound
		}
		return swap.Request{}, ErrInternal
	}

	u.logger.Printf("Swap requested | id=%s requester=%s target=%s", created.ID, created.RequesterID, created.TargetID)
	u.notify(created.TargetID, SwapEventRequested, created, requesterID)
	return created, nil
}

func (u *Swap) List(ctx context.Context, userID uuid.UUID) ([]swap.Request, error) {
	out, err := u.swaps.ListForUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Swap) Accept(ctx context.Context, userID uuid.UUID, swapID uuid.UUID) (swap.Request, error) {
	return u.transition(ctx, userID, swapID, swap.StatusAccepted)
}

func (u *Swap) Reject(ctx context.Context, userID uuid.UUID, swapID uuid.UUID) (swap.Request, error) {
	return u.transition(ctx, userID, swapID, swap.StatusRejected)
}

func (u *Swap) Cancel(ctx context.Context, userID uuid.UUID, swapID uuid.UUID) (swap.Request, error) {
	return u.transition(ctx, userID, swapID, swap.StatusCancelled)
}

// transition applies a status change. Only the target may accept or reject;
// only the requester may cancel; only pending requests move.
func (u *Swap) transition(ctx context.Context, userID uuid.UUID, swapID uuid.UUID, to swap.Status) (swap.Request, error) {
	if swapID == uuid.Nil {
		return swap.Request{}, ErrInvalidInput
	}

	req, err := u.swaps.FindByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, swap.ErrNotFound) {
			return swap.Request{}, ErrSwapNotFound
		}
		return swap.Request{}, ErrInternal
	}
	if userID != req.RequesterID && userID != req.TargetID {
		return swap.Request{}, ErrSwapNotFound
	}

	allowed := req.TargetID
	if to == swap.StatusCancelled {
		allowed = req.RequesterID
	}
	if userID != allowed {
		return swap.Request{}, ErrForbidden
	}
	if req.Status.Final() {
		return swap.Request{}, ErrSwapNotPending
	}

	updated, err := u.swaps.UpdateStatus(ctx, swapID, swap.StatusPending, to)
	if err != nil {
		if errors.Is(err, swap.ErrNotFound) {
			return swap.Request{}, ErrSwapNotPending
		}
		return swap.Request{}, ErrInternal
	}

	u.logger.Printf("Swap %s | id=%s by=%s", to, updated.ID, userID)
	u.notify(updated.Counterpart(userID), SwapEventUpdated, updated, userID)
	return updated, nil
}

func (u *Swap) requireOffered(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error {
	ok, err := u.userSkills.HasSkill(ctx, userID, skillID, skill.TypeOffered)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrSwapSkillNotOwned
	}
	return nil
}

func (u *Swap) notify(to uuid.UUID, typ string, req swap.Request, from uuid.UUID) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyUser(to, SwapEvent{
		Type:      typ,
		SwapID:    req.ID,
		Status:    string(req.Status),
		FromUser:  from,
		Timestamp: u.now().UTC().Format(time.RFC3339),
	})
}
