package handler

import (
	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc     usecase.SkillUsecase
	search usecase.SearchUsecase
}

type createSkillRequest struct {
	Name string `json:"name"`
}

type searchSkillsRequest struct {
	Query     string `json:"query"`
	Threshold *int   `json:"threshold"`
}

func NewSkillHandler(uc usecase.SkillUsecase, search usecase.SearchUsecase) *SkillHandler {
	return &SkillHandler{uc: uc, search: search}
}

func (h *SkillHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/search", h.Search)
	grp.Get("/suggestions", h.Suggestions)
}

func (h *SkillHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/skills", h.Create)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddSkill(c.Context(), req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill created successfully", created)
}

func (h *SkillHandler) Search(c fiber.Ctx) error {
	var req searchSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	matches, err := h.search.SearchSkills(c.Context(), req.Query, req.Threshold)
	if err != nil {
		return mapUsecaseError(err)
	}
	data := map[string]any{
		"query":   req.Query,
		"results": dto.NewMatchResponses(matches),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *SkillHandler) Suggestions(c fiber.Ctx) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	query := c.Query("q")
	items, err := h.search.Suggest(c.Context(), query, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	data := map[string]any{
		"query":       query,
		"suggestions": dto.NewSuggestionResponses(items),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
