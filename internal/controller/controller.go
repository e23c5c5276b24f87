package controller

import (
	"github.com/gofiber/fiber/v2"

	"open-law-be/internal/pkg/apperr"
	"open-law-be/internal/pkg/serverutils"
)

func paramID(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid %s parameter", name)
	}
	return uint(id), nil
}

func requireUser(ctx *fiber.Ctx) (uint, error) {
	userID, ok := serverutils.UserID(ctx)
	if !ok {
		return 0, apperr.Unauthorized("authentication required")
	}
	return userID, nil
}

// optionalUser returns nil for anonymous requests on routes behind the
// optional JWT middleware.
func optionalUser(ctx *fiber.Ctx) *uint {
	if userID, ok := serverutils.UserID(ctx); ok {
		return &userID
	}
	return nil
}
