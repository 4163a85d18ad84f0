package controller

import (
	"errors"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMoodController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	GetByDate(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type moodController struct {
	moodService service.IMoodService
}

func NewMoodController(moodService service.IMoodService) IMoodController {
	return &moodController{
		moodService: moodService,
	}
}

func (c *moodController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mood/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("/stats", c.Stats)
	h.Get("/date/:date", c.GetByDate)
	h.Delete("/:id", c.Delete)
}

func (c *moodController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMoodLogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.moodService.Create(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		if errors.Is(err, service.ErrMoodAlreadyLogged) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		if errors.Is(err, service.ErrInvalidMoodDate) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create mood log", res))
}

func (c *moodController) List(ctx *fiber.Ctx) error {
	res, err := c.moodService.List(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list mood logs", res))
}

func (c *moodController) GetByDate(ctx *fiber.Ctx) error {
	res, err := c.moodService.GetByDate(ctx.Context(), currentUserId(ctx), ctx.Params("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidMoodDate) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "no mood logged for this date")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get mood log", res))
}

func (c *moodController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid mood log id")
	}

	if err := c.moodService.Delete(ctx.Context(), currentUserId(ctx), id); err != nil {
		if errors.Is(err, service.ErrMoodLogNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete mood log", nil))
}

func (c *moodController) Stats(ctx *fiber.Ctx) error {
	res, err := c.moodService.Stats(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get mood stats", res))
}
