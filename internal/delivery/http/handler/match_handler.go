package handler

import (
	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/matches")
	grp.Get("/recommendations", h.Recommendations)
	grp.Get("/demand", h.Demand)
}

func (h *MatchHandler) Recommendations(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	topN, err := queryInt(c, "top_n")
	if err != nil {
		return err
	}

	items, err := h.uc.Recommendations(c.Context(), userID, topN)
	if err != nil {
		return mapUsecaseError(err)
	}
	data := map[string]any{
		"user_id":         userID,
		"recommendations": dto.NewRecommendationResponses(items),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *MatchHandler) Demand(c fiber.Ctx) error {
	items, err := h.uc.Demand(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillDemandResponses(items))
}
