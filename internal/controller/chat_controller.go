package controller

import (
	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	History(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/messages", c.History)
	h.Post("/messages", c.Send)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	res, err := c.chatService.History(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chat messages", res))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Send(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat message", res))
}
