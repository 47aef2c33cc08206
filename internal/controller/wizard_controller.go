package controller

import (
	"doc-wizard-be/internal/dto"
	"doc-wizard-be/internal/pkg/serverutils"
	"doc-wizard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWizardController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	UpdateParams(ctx *fiber.Ctx) error
	NextStep(ctx *fiber.Ctx) error
	PrevStep(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Feedback(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	SetVersion(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
}

type wizardController struct {
	wizardService service.IWizardService
}

func NewWizardController(wizardService service.IWizardService) IWizardController {
	return &wizardController{
		wizardService: wizardService,
	}
}

func (c *wizardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wizard/v1")
	h.Get("", c.State)
	h.Put("params", c.UpdateParams)
	h.Post("next-step", c.NextStep)
	h.Post("prev-step", c.PrevStep)
	h.Post("generate", c.Generate)
	h.Post("feedback", c.Feedback)
	h.Post("import", c.Import)
	h.Put("version", c.SetVersion)
	h.Post("reset", c.Reset)
	h.Get("preview", c.Preview)
}

func (c *wizardController) State(ctx *fiber.Ctx) error {
	res, err := c.wizardService.State(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get wizard state", res))
}

func (c *wizardController) UpdateParams(ctx *fiber.Ctx) error {
	var req dto.UpdateParamsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &dto.ValidationError{Message: "Invalid request body"}
	}

	res, err := c.wizardService.UpdateParams(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update parameters", res))
}

func (c *wizardController) NextStep(ctx *fiber.Ctx) error {
	res, err := c.wizardService.NextStep(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success advance step", res))
}

func (c *wizardController) PrevStep(ctx *fiber.Ctx) error {
	res, err := c.wizardService.PrevStep(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success go back step", res))
}

func (c *wizardController) Generate(ctx *fiber.Ctx) error {
	res, err := c.wizardService.GenerateInitial(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate documentation", res))
}

func (c *wizardController) Feedback(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &dto.ValidationError{Message: "Invalid request body"}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.wizardService.RegenerateWithFeedback(ctx.Context(), req.Feedback)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success regenerate documentation", res))
}

func (c *wizardController) Import(ctx *fiber.Ctx) error {
	var req dto.ImportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &dto.ValidationError{Message: "Invalid request body"}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.wizardService.ImportExisting(ctx.Context(), req.Document, req.Feedback)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success import documentation", res))
}

func (c *wizardController) SetVersion(ctx *fiber.Ctx) error {
	var req dto.SetVersionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &dto.ValidationError{Message: "Invalid request body"}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.wizardService.SetVersion(ctx.Context(), *req.Index)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success switch version", res))
}

func (c *wizardController) Reset(ctx *fiber.Ctx) error {
	res, err := c.wizardService.Reset(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reset session", res))
}

func (c *wizardController) Preview(ctx *fiber.Ctx) error {
	res, err := c.wizardService.Preview(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success render preview", res))
}
