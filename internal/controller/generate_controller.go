package controller

import (
	"encoding/json"

	"doc-wizard-be/internal/dto"
	"doc-wizard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGenerateController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type generateController struct {
	generationService service.IGenerationService
}

func NewGenerateController(generationService service.IGenerationService) IGenerateController {
	return &generateController{
		generationService: generationService,
	}
}

func (c *generateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/generate/v1")
	h.Post("", c.Generate)
}

// Generate is the raw completion endpoint: caller-supplied messages in, one
// normalized markdown document out. The messages field is inspected before
// decoding so a missing field and a wrongly-shaped one report the same way.
func (c *generateController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := json.Unmarshal(ctx.Body(), &req); err != nil {
		return &dto.ValidationError{Message: "Invalid request: messages array is required"}
	}

	// A literal null decodes into a nil slice without error, so the nil
	// check must run on the decoded value too.
	var messages []dto.GenerateMessage
	if req.Messages == nil || json.Unmarshal(req.Messages, &messages) != nil || messages == nil {
		return &dto.ValidationError{Message: "Invalid request: messages array is required"}
	}

	content, err := c.generationService.Generate(ctx.Context(), messages)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.GenerateResponse{Content: content})
}
