package controller

import (
	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	VerifyEmail(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	RefreshToken(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/verify-email", c.VerifyEmail)
	h.Post("/login", c.Login)
	h.Post("/refresh", c.RefreshToken)
	h.Post("/logout", c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("User registered successfully. Check your inbox for the OTP code.", res))
}

func (c *authController) VerifyEmail(ctx *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.VerifyEmail(ctx.Context(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Email verified successfully", nil))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) RefreshToken(ctx *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RefreshToken(ctx.Context(), &req)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Token refreshed", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.Logout(ctx.Context(), req.RefreshToken); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}
