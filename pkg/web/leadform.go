package web

import (
	"github.com/gofiber/fiber/v3"
	"github.com/launchpadhq/launchpad/pkg/aicopy"
	"github.com/launchpadhq/launchpad/pkg/leadform"
	"github.com/launchpadhq/launchpad/pkg/models"
)

func (h *APIHandlers) GetLeadForms(c fiber.Ctx) error {
	forms, err := h.leadFormService.ListForms(c.Context(), c.Query("workspace_id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"forms":       forms,
		"total_count": len(forms),
	})
}

func (h *APIHandlers) GetLeadForm(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Form ID is required")
	}

	form, err := h.leadFormService.FetchByID(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(form)
}

func (h *APIHandlers) CreateLeadForm(c fiber.Ctx) error {
	var req CreateLeadFormRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	form := &models.LeadForm{
		Name:        req.Name,
		WorkspaceID: req.WorkspaceID,
		Questions:   []*models.Question{},
	}

	created, err := h.leadFormService.Create(c.Context(), form)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) DeleteLeadForm(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Form ID is required")
	}

	err := h.leadFormService.Delete(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) CreateQuestion(c fiber.Ctx) error {
	formID := c.Params("id")
	if formID == "" {
		return badRequest(c, "Form ID is required")
	}

	var req CreateQuestionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	question, err := h.leadFormService.AddQuestion(c.Context(), formID, models.QuestionType(req.Type), req.Label)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

func (h *APIHandlers) UpdateQuestion(c fiber.Ctx) error {
	formID := c.Params("id")
	questionID := c.Params("questionId")

	if formID == "" || questionID == "" {
		return badRequest(c, "Form ID and question ID are required")
	}

	var req UpdateQuestionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	question, err := h.leadFormService.UpdateQuestion(c.Context(), formID, questionID, leadform.QuestionPatch{
		Label:       req.Label,
		Required:    req.Required,
		Placeholder: req.Placeholder,
		HelpText:    req.HelpText,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(question)
}

func (h *APIHandlers) DeleteQuestion(c fiber.Ctx) error {
	formID := c.Params("id")
	questionID := c.Params("questionId")

	if formID == "" || questionID == "" {
		return badRequest(c, "Form ID and question ID are required")
	}

	err := h.leadFormService.RemoveQuestion(c.Context(), formID, questionID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) SetQuestionOptions(c fiber.Ctx) error {
	formID := c.Params("id")
	questionID := c.Params("questionId")

	if formID == "" || questionID == "" {
		return badRequest(c, "Form ID and question ID are required")
	}

	var req SetOptionsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	question, err := h.leadFormService.SetOptions(c.Context(), formID, questionID, req.Options)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(question)
}

func (h *APIHandlers) SetQuestionConditional(c fiber.Ctx) error {
	formID := c.Params("id")
	questionID := c.Params("questionId")

	if formID == "" || questionID == "" {
		return badRequest(c, "Form ID and question ID are required")
	}

	var req SetConditionalRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	question, err := h.leadFormService.SetConditional(c.Context(), formID, questionID, req.QuestionID, req.Value)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(question)
}

func (h *APIHandlers) ClearQuestionConditional(c fiber.Ctx) error {
	formID := c.Params("id")
	questionID := c.Params("questionId")

	if formID == "" || questionID == "" {
		return badRequest(c, "Form ID and question ID are required")
	}

	question, err := h.leadFormService.ClearConditional(c.Context(), formID, questionID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(question)
}

func (h *APIHandlers) GenerateQuestions(c fiber.Ctx) error {
	formID := c.Params("id")
	if formID == "" {
		return badRequest(c, "Form ID is required")
	}

	var req GenerateQuestionsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	form, err := h.leadFormService.FetchByID(c.Context(), formID)
	if err != nil {
		return handleServiceError(c, err)
	}

	updated, err := h.leadFormService.GenerateQuestions(c.Context(), formID, aicopy.LeadFormRequest{
		Workspace: form.WorkspaceID,
		Audience:  req.Audience,
		Prompt:    req.Prompt,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(updated)
}
