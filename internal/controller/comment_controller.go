package controller

import (
	"github.com/gofiber/fiber/v2"

	"open-law-be/internal/dto"
	"open-law-be/internal/pkg/serverutils"
	"open-law-be/internal/service"
)

type ICommentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type commentController struct {
	service service.ICommentService
}

func NewCommentController(commentService service.ICommentService) ICommentController {
	return &commentController{service: commentService}
}

func (c *commentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/comment/v1")

	h.Post("", serverutils.OptionalJwtMiddleware, c.Create)
	h.Put(":id", serverutils.JwtMiddleware, c.Update)
	h.Delete(":id", serverutils.JwtMiddleware, c.Delete)
}

func (c *commentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), optionalUser(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create comment", res))
}

func (c *commentController) Update(ctx *fiber.Ctx) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Update(ctx.Context(), userID, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update comment", nil))
}

func (c *commentController) Delete(ctx *fiber.Ctx) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), userID, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete comment", nil))
}
