package controller

import (
	"errors"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISummaryController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	GenerateRecommendations(ctx *fiber.Ctx) error
	ListRecommendations(ctx *fiber.Ctx) error
}

type summaryController struct {
	summaryService        service.ISummaryService
	recommendationService service.IRecommendationService
}

func NewSummaryController(
	summaryService service.ISummaryService,
	recommendationService service.IRecommendationService,
) ISummaryController {
	return &summaryController{
		summaryService:        summaryService,
		recommendationService: recommendationService,
	}
}

func (c *summaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insights/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/summaries", c.Generate)
	h.Get("/summaries", c.History)
	h.Post("/recommendations", c.GenerateRecommendations)
	h.Get("/recommendations", c.ListRecommendations)
}

func (c *summaryController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateSummaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.summaryService.Generate(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate summary", res))
}

func (c *summaryController) History(ctx *fiber.Ctx) error {
	res, err := c.summaryService.History(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list summaries", res))
}

func (c *summaryController) GenerateRecommendations(ctx *fiber.Ctx) error {
	var req dto.GenerateRecommendationsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recommendationService.Generate(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate recommendations", res))
}

func (c *summaryController) ListRecommendations(ctx *fiber.Ctx) error {
	res, err := c.recommendationService.List(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list recommendations", res))
}
