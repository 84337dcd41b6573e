package controller

import (
	"errors"

	"edusphere-be/internal/service"
	"edusphere-be/pkg/catalog"
	"edusphere-be/pkg/transcript"
	"edusphere-be/pkg/tutor/quiz"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func ok(ctx *fiber.Ctx, message string, data interface{}) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": message,
		"data":    data,
	})
}

func fail(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"code":    status,
		"message": message,
	})
}

// failFromError maps domain errors onto HTTP statuses.
func failFromError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyField):
		return fail(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return fail(ctx, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		return fail(ctx, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrQuizNotReady):
		return fail(ctx, fiber.StatusConflict, err.Error())
	case errors.Is(err, catalog.ErrSubjectNotFound), errors.Is(err, catalog.ErrChapterNotFound):
		return fail(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, transcript.ErrUnavailable):
		return fail(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, quiz.ErrParseFailure), errors.Is(err, service.ErrRequestFailed):
		return fail(ctx, fiber.StatusBadGateway, err.Error())
	default:
		return fail(ctx, fiber.StatusInternalServerError, err.Error())
	}
}
