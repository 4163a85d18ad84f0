package controller

import (
	"errors"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDiaryController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type diaryController struct {
	diaryService service.IDiaryService
}

func NewDiaryController(diaryService service.IDiaryService) IDiaryController {
	return &diaryController{
		diaryService: diaryService,
	}
}

func (c *diaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/diary/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Delete("/:id", c.Delete)
}

func (c *diaryController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDiaryEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.diaryService.Create(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create diary entry", res))
}

func (c *diaryController) List(ctx *fiber.Ctx) error {
	res, err := c.diaryService.List(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list diary entries", res))
}

func (c *diaryController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid diary entry id")
	}

	if err := c.diaryService.Delete(ctx.Context(), currentUserId(ctx), id); err != nil {
		if errors.Is(err, service.ErrDiaryEntryNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete diary entry", nil))
}
