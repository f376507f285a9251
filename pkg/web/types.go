// Package web provides HTTP request and response types for the launchpad API.
package web

// CreateGraphRequest represents the request body for creating a new graph.
type CreateGraphRequest struct {
	Name        string `json:"name"         validate:"required,min=3"`
	WorkspaceID string `json:"workspace_id" validate:"required"`
}

// UpdateGraphRequest represents the request body for updating graph metadata.
// All fields are optional to support partial updates.
type UpdateGraphRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=3"`
}

// CreateNodeRequest represents the request body for adding a node to a graph.
// The node's label and config come from the registry defaults for the kind;
// callers patch them afterwards.
type CreateNodeRequest struct {
	Kind      string `json:"kind"       validate:"required"`
	PositionX int    `json:"position_x"`
	PositionY int    `json:"position_y"`
}

// UpdateNodeRequest represents the request body for patching a node.
// Kind and ID cannot be changed.
type UpdateNodeRequest struct {
	Label       *string        `json:"label,omitempty"       validate:"omitempty,min=1"`
	Description *string        `json:"description,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
	Status      *string        `json:"status,omitempty"      validate:"omitempty,oneof=idle running success failed"`
}

// CreateEdgeRequest represents the request body for connecting two nodes.
type CreateEdgeRequest struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
	Type   string `json:"type"`
}

// GenerateCopyRequest represents the request body for fetching AI copy
// variations for a node.
type GenerateCopyRequest struct {
	Product string `json:"product" validate:"required"`
	Draft   string `json:"draft"`
	Count   int    `json:"count"   validate:"omitempty,min=1,max=10"`
}

// CreateLeadFormRequest represents the request body for creating a lead form.
type CreateLeadFormRequest struct {
	Name        string `json:"name"         validate:"required,min=3"`
	WorkspaceID string `json:"workspace_id" validate:"required"`
}

// CreateQuestionRequest represents the request body for adding a question.
type CreateQuestionRequest struct {
	Type  string `json:"type"  validate:"required"`
	Label string `json:"label" validate:"required,min=1"`
}

// UpdateQuestionRequest represents the request body for patching a question.
// Type and ID cannot be changed.
type UpdateQuestionRequest struct {
	Label       *string `json:"label,omitempty" validate:"omitempty,min=1"`
	Required    *bool   `json:"required,omitempty"`
	Placeholder *string `json:"placeholder,omitempty"`
	HelpText    *string `json:"help_text,omitempty"`
}

// SetOptionsRequest represents the request body for replacing a choice
// question's options.
type SetOptionsRequest struct {
	Options []string `json:"options" validate:"required"`
}

// SetConditionalRequest represents the request body for anchoring a
// question's visibility to another question's answer.
type SetConditionalRequest struct {
	QuestionID string `json:"questionId" validate:"required"`
	Value      any    `json:"value"`
}

// GenerateQuestionsRequest represents the request body for AI-generated
// lead-form questions.
type GenerateQuestionsRequest struct {
	Audience string `json:"audience"`
	Prompt   string `json:"prompt" validate:"required"`
}
