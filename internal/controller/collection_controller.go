package controller

import (
	"github.com/gofiber/fiber/v2"

	"open-law-be/internal/dto"
	"open-law-be/internal/pkg/serverutils"
	"open-law-be/internal/service"
)

type ICollectionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Children(ctx *fiber.Ctx) error
	HasLeaf(ctx *fiber.Ctx) error
	Sections(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type collectionController struct {
	service        service.ICollectionService
	sectionService service.ISectionService
}

func NewCollectionController(
	collectionService service.ICollectionService,
	sectionService service.ISectionService,
) ICollectionController {
	return &collectionController{
		service:        collectionService,
		sectionService: sectionService,
	}
}

func (c *collectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/collection/v1")

	h.Get(":id", c.Show)
	h.Get(":id/children", c.Children)
	h.Get(":id/has-leaf", c.HasLeaf)
	h.Get(":id/sections", c.Sections)

	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Put(":id", serverutils.JwtMiddleware, c.Update)
	h.Delete(":id", serverutils.JwtMiddleware, c.Delete)
}

func (c *collectionController) Create(ctx *fiber.Ctx) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateCollectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create collection", res))
}

func (c *collectionController) Show(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show collection", res))
}

func (c *collectionController) Children(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Children(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get collection children", res))
}

// HasLeaf tells clients whether a subtree already holds a leaf, so they can
// decide between offering sections or deeper sub-collections.
func (c *collectionController) HasLeaf(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	hasLeaf, err := c.service.IsDescendantLeaf(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success check collection leaves", hasLeaf))
}

func (c *collectionController) Sections(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.sectionService.ListByCollection(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get collection sections", res))
}

func (c *collectionController) Update(ctx *fiber.Ctx) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCollectionRequest
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
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update collection", nil))
}

func (c *collectionController) Delete(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete collection", nil))
}
