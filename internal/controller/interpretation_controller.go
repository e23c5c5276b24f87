package controller

import (
	"github.com/gofiber/fiber/v2"

	"open-law-be/internal/dto"
	"open-law-be/internal/pkg/serverutils"
	"open-law-be/internal/service"
)

type IInterpretationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Comments(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type interpretationController struct {
	service        service.IInterpretationService
	commentService service.ICommentService
}

func NewInterpretationController(
	interpretationService service.IInterpretationService,
	commentService service.ICommentService,
) IInterpretationController {
	return &interpretationController{
		service:        interpretationService,
		commentService: commentService,
	}
}

func (c *interpretationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interpretation/v1")

	h.Get(":id", c.Show)
	h.Get(":id/comments", c.Comments)

	// Anonymous submissions are allowed; a token attributes the author.
	h.Post("", serverutils.OptionalJwtMiddleware, c.Create)
	h.Put(":id", serverutils.JwtMiddleware, c.Update)
	h.Delete(":id", serverutils.JwtMiddleware, c.Delete)
}

func (c *interpretationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateInterpretationRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Success create interpretation", res))
}

func (c *interpretationController) Show(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show interpretation", res))
}

func (c *interpretationController) Comments(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.commentService.ListByInterpretation(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get interpretation comments", res))
}

func (c *interpretationController) Update(ctx *fiber.Ctx) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateInterpretationRequest
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
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update interpretation", nil))
}

func (c *interpretationController) Delete(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete interpretation", nil))
}
