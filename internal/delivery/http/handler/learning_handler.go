package handler

import (
	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LearningHandler struct {
	uc usecase.LearningUsecase
}

func NewLearningHandler(uc usecase.LearningUsecase) *LearningHandler {
	return &LearningHandler{uc: uc}
}

func (h *LearningHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/learning")
	grp.Get("/path", h.Path)
	grp.Get("/gaps", h.Gaps)
	grp.Get("/swap-success/:user_id", h.SwapSuccess)
}

func (h *LearningHandler) Path(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Path(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewLearningRecommendationResponses(items))
}

func (h *LearningHandler) Gaps(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	gaps, err := h.uc.Gaps(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	if gaps == nil {
		gaps = []string{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, gaps)
}

func (h *LearningHandler) SwapSuccess(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	otherID, err := paramUUID(c, "user_id")
	if err != nil {
		return err
	}

	p, err := h.uc.SwapSuccess(c.Context(), userID, otherID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SwapSuccessResponse{
		UserID:      userID,
		OtherUserID: otherID,
		Probability: p,
	})
}
