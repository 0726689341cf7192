package handler

import (
	"context"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/swap"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SwapHandler struct {
	uc usecase.SwapUsecase
}

type createSwapRequest struct {
	TargetID         uuid.UUID `json:"target_id"`
	RequesterSkillID uuid.UUID `json:"requester_skill_id"`
	TargetSkillID    uuid.UUID `json:"target_skill_id"`
	Message          string    `json:"message"`
}

func NewSwapHandler(uc usecase.SwapUsecase) *SwapHandler {
	return &SwapHandler{uc: uc}
}

func (h *SwapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/swaps")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Post("/:id/accept", h.transition(h.uc.Accept))
	grp.Post("/:id/reject", h.transition(h.uc.Reject))
	grp.Post("/:id/cancel", h.transition(h.uc.Cancel))
}

func (h *SwapHandler) Create(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createSwapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), userID, usecase.CreateSwapInput{
		TargetID:         req.TargetID,
		RequesterSkillID: req.RequesterSkillID,
		TargetSkillID:    req.TargetSkillID,
		Message:          req.Message,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Swap request created", dto.NewSwapResponse(created))
}

func (h *SwapHandler) List(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwapResponses(items))
}

type swapTransition func(ctx context.Context, userID uuid.UUID, swapID uuid.UUID) (swap.Request, error)

func (h *SwapHandler) transition(fn swapTransition) fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		id, err := paramUUID(c, "id")
		if err != nil {
			return err
		}

		updated, err := fn(c.Context(), userID, id)
		if err != nil {
			return mapUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwapResponse(updated))
	}
}
