package controller

import (
	"errors"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	DeleteAccount(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type userController struct {
	userService   service.IUserService
	exportService service.IExportService
}

func NewUserController(userService service.IUserService, exportService service.IExportService) IUserController {
	return &userController{
		userService:   userService,
		exportService: exportService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/profile", c.GetProfile)
	h.Put("/profile", c.UpdateProfile)
	h.Delete("/account", c.DeleteAccount)
	h.Get("/export", c.Export)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.userService.GetProfile(ctx.Context(), currentUserId(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateProfile(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *userController) DeleteAccount(ctx *fiber.Ctx) error {
	if err := c.userService.DeleteAccount(ctx.Context(), currentUserId(ctx)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Account deleted", nil))
}

func (c *userController) Export(ctx *fiber.Ctx) error {
	document, filename, err := c.exportService.Export(ctx.Context(), currentUserId(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.SendString(document)
}
