package web

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/launchpadhq/launchpad/pkg/services"
	"github.com/moogar0880/problems"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func internalError(c fiber.Ctx, err error) error {
	problem := problems.NewStatusProblem(500).
		WithInstance(c.Path()).
		WithType("internal_error").
		WithError(err)

	return c.Status(fiber.StatusInternalServerError).JSON(problem)
}

// handleServiceError provides typed error handling for service layer errors.
func handleServiceError(c fiber.Ctx, err error) error {
	switch {
	case services.IsNotFoundError(err):
		problemType := "not_found"

		switch {
		case errors.Is(err, services.ErrGraphNotFound):
			problemType = "graph_not_found"
		case errors.Is(err, services.ErrFormNotFound):
			problemType = "form_not_found"
		case errors.Is(err, services.ErrNodeNotFound):
			problemType = "node_not_found"
		case errors.Is(err, services.ErrTemplateNotFound):
			problemType = "template_not_found"
		}

		problem := problems.NewStatusProblem(404).
			WithInstance(c.Path()).
			WithType(problemType).
			WithDetail(err.Error())

		return c.Status(fiber.StatusNotFound).JSON(problem)

	case services.IsValidationError(err):
		problem := problems.NewStatusProblem(400).
			WithInstance(c.Path()).
			WithType("validation_error").
			WithDetail(err.Error())

		return c.Status(fiber.StatusBadRequest).JSON(problem)

	case services.IsReferenceError(err):
		problem := problems.NewStatusProblem(422).
			WithInstance(c.Path()).
			WithType("invalid_reference").
			WithDetail(err.Error())

		return c.Status(fiber.StatusUnprocessableEntity).JSON(problem)

	case services.IsStaleResponseError(err):
		// The graph changed while the AI request was in flight. The
		// client should re-issue against the current version.
		problem := problems.NewStatusProblem(409).
			WithInstance(c.Path()).
			WithType("stale_ai_response").
			WithDetail("graph changed while the AI request was in flight; retry")

		return c.Status(fiber.StatusConflict).JSON(problem)

	case services.IsRemoteParseError(err):
		// The AI backend answered in a shape nothing could recover.
		problem := problems.NewStatusProblem(422).
			WithInstance(c.Path()).
			WithType("unparseable_ai_response").
			WithDetail("AI response could not be parsed; try a different prompt")

		return c.Status(fiber.StatusUnprocessableEntity).JSON(problem)

	default:
		// Log unexpected errors but don't expose details
		problem := problems.NewStatusProblem(500).
			WithInstance(c.Path()).
			WithType("internal_error").
			WithError(err)

		return c.Status(fiber.StatusInternalServerError).JSON(problem)
	}
}
