package controller

import (
	"github.com/gofiber/fiber/v2"

	"open-law-be/internal/dto"
	"open-law-be/internal/pkg/serverutils"
	"open-law-be/internal/service"
)

type IBookController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowTree(ctx *fiber.Ctx) error
	Versions(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListContributors(ctx *fiber.Ctx) error
	AddContributor(ctx *fiber.Ctx) error
	UpdateContributor(ctx *fiber.Ctx) error
	RemoveContributor(ctx *fiber.Ctx) error
}

type bookController struct {
	service            service.IBookService
	contributorService service.IContributorService
}

func NewBookController(
	bookService service.IBookService,
	contributorService service.IContributorService,
) IBookController {
	return &bookController{
		service:            bookService,
		contributorService: contributorService,
	}
}

func (c *bookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/book/v1")

	// Reading is public. "mine" must register before ":id".
	h.Get("", c.GetAll)
	h.Get("mine", serverutils.JwtMiddleware, c.Mine)
	h.Get(":id", c.Show)
	h.Get(":id/tree", c.ShowTree)
	h.Get(":id/versions", c.Versions)
	h.Get(":id/contributors", c.ListContributors)

	// Mutations need a user.
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Put(":id", serverutils.JwtMiddleware, c.Update)
	h.Delete(":id", serverutils.JwtMiddleware, c.Delete)
	h.Post(":id/contributors", serverutils.JwtMiddleware, c.AddContributor)
	h.Put(":id/contributors", serverutils.JwtMiddleware, c.UpdateContributor)
	h.Delete(":id/contributors", serverutils.JwtMiddleware, c.RemoveContributor)
}

func (c *bookController) GetAll(ctx *fiber.Ctx) error {
	var req dto.ListBooksRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all books", res))
}

func (c *bookController) Mine(ctx *fiber.Ctx) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Mine(ctx.Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get my books", res))
}

func (c *bookController) Create(ctx *fiber.Ctx) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateBookRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Success create book", res))
}

func (c *bookController) Show(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show book", res))
}

func (c *bookController) ShowTree(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.ShowTree(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show book tree", res))
}

func (c *bookController) Versions(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Versions(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get book versions", res))
}

func (c *bookController) Update(ctx *fiber.Ctx) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateBookRequest
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
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update book", nil))
}

func (c *bookController) Delete(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete book", nil))
}

func (c *bookController) ListContributors(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.contributorService.List(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get contributors", res))
}

func (c *bookController) AddContributor(ctx *fiber.Ctx) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.AddContributorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.BookId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contributorService.Add(ctx.Context(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add contributor", res))
}

func (c *bookController) UpdateContributor(ctx *fiber.Ctx) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateContributorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.BookId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.contributorService.Update(ctx.Context(), userID, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update contributor", nil))
}

func (c *bookController) RemoveContributor(ctx *fiber.Ctx) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.RemoveContributorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.BookId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.contributorService.Remove(ctx.Context(), userID, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove contributor", nil))
}
