package serverutils

import (
	"errors"

	"doc-wizard-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps the generation error taxonomy onto HTTP
// statuses. Detail strings are exposed outside production only.
func ErrorHandlerMiddleware(environment string) fiber.Handler {
	includeDetails := environment != "production"

	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var (
			validationErr *dto.ValidationError
			authErr       *dto.AuthConfigError
			rateErr       *dto.RateLimitError
			upstreamErr   *dto.UpstreamError
			emptyErr      *dto.EmptyCompletionError
			indexErr      *dto.IndexError
			inFlightErr   *dto.GenerationInFlightError
			notFoundErr   *dto.NotFoundError
			fiberErr      *fiber.Error
		)

		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(dto.GenerateErrorResponse{
				Error: validationErr.Message,
			})
		case errors.As(err, &rateErr):
			return ctx.Status(fiber.StatusTooManyRequests).JSON(dto.GenerateErrorResponse{
				Error: "Rate limit exceeded. Please try again later.",
			})
		case errors.As(err, &authErr):
			resp := dto.GenerateErrorResponse{Error: "OpenAI API key configuration error"}
			if includeDetails {
				resp.Details = authErr.Cause.Error()
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(resp)
		case errors.As(err, &emptyErr):
			resp := dto.GenerateErrorResponse{Error: "Failed to generate documentation"}
			if includeDetails {
				resp.Details = emptyErr.Error()
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(resp)
		case errors.As(err, &upstreamErr):
			resp := dto.GenerateErrorResponse{Error: "Failed to generate documentation"}
			if includeDetails {
				resp.Details = upstreamErr.Cause.Error()
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(resp)
		case errors.As(err, &indexErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(dto.GenerateErrorResponse{
				Error: indexErr.Error(),
			})
		case errors.As(err, &notFoundErr):
			return ctx.Status(fiber.StatusNotFound).JSON(dto.GenerateErrorResponse{
				Error: notFoundErr.Error(),
			})
		case errors.As(err, &inFlightErr):
			return ctx.Status(fiber.StatusConflict).JSON(dto.GenerateErrorResponse{
				Error: inFlightErr.Error(),
			})
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(dto.GenerateErrorResponse{
				Error: fiberErr.Message,
			})
		default:
			resp := dto.GenerateErrorResponse{Error: "Internal server error"}
			if includeDetails {
				resp.Details = err.Error()
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(resp)
		}
	}
}
