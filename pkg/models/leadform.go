package models

import "time"

// QuestionType enumerates the supported lead-form field types. Closed set.
type QuestionType string

const (
	QuestionTypeFullName   QuestionType = "FULL_NAME"
	QuestionTypeEmail      QuestionType = "EMAIL"
	QuestionTypePhone      QuestionType = "PHONE"
	QuestionTypeText       QuestionType = "TEXT"
	QuestionTypeTextarea   QuestionType = "TEXTAREA"
	QuestionTypeMCQSingle  QuestionType = "MCQ_SINGLE"
	QuestionTypeMCQMulti   QuestionType = "MCQ_MULTI"
	QuestionTypeDropdown   QuestionType = "DROPDOWN"
	QuestionTypeBoolean    QuestionType = "BOOLEAN"
	QuestionTypeRating     QuestionType = "RATING"
	QuestionTypeDate       QuestionType = "DATE"
	QuestionTypeFileUpload QuestionType = "FILE_UPLOAD"
	QuestionTypeAddress    QuestionType = "ADDRESS"
)

// QuestionTypes returns every valid question type.
func QuestionTypes() []QuestionType {
	return []QuestionType{
		QuestionTypeFullName,
		QuestionTypeEmail,
		QuestionTypePhone,
		QuestionTypeText,
		QuestionTypeTextarea,
		QuestionTypeMCQSingle,
		QuestionTypeMCQMulti,
		QuestionTypeDropdown,
		QuestionTypeBoolean,
		QuestionTypeRating,
		QuestionTypeDate,
		QuestionTypeFileUpload,
		QuestionTypeAddress,
	}
}

// Valid reports whether t is a member of the closed type set.
func (t QuestionType) Valid() bool {
	for _, known := range QuestionTypes() {
		if t == known {
			return true
		}
	}

	return false
}

// SupportsOptions reports whether the type carries an option list.
func (t QuestionType) SupportsOptions() bool {
	switch t {
	case QuestionTypeMCQSingle, QuestionTypeMCQMulti, QuestionTypeDropdown:
		return true
	default:
		return false
	}
}

// SupportsConditional reports whether other questions may depend on an
// answer of this type. Only discrete-answer types qualify.
func (t QuestionType) SupportsConditional() bool {
	switch t {
	case QuestionTypeMCQSingle, QuestionTypeDropdown, QuestionTypeBoolean:
		return true
	default:
		return false
	}
}

// ConditionalRule makes a question visible only when another question's
// answer equals Value. The target must be a discrete-answer question.
type ConditionalRule struct {
	QuestionID string `json:"questionId" validate:"required"`
	Value      any    `json:"value,omitempty"`
}

// Question is a single lead-form field.
type Question struct {
	ID            string           `json:"id"       validate:"required"`
	Type          QuestionType     `json:"type"     validate:"required"`
	Label         string           `json:"label"    validate:"required,min=1"`
	Required      bool             `json:"required"`
	Options       []string         `json:"options,omitempty"`
	Placeholder   string           `json:"placeholder,omitempty"`
	HelpText      string           `json:"help_text,omitempty"`
	ConditionalOn *ConditionalRule `json:"conditionalOn,omitempty"`
}

// Clone returns a deep copy of the question.
func (q *Question) Clone() *Question {
	clone := *q

	if q.Options != nil {
		clone.Options = make([]string, len(q.Options))
		copy(clone.Options, q.Options)
	}

	if q.ConditionalOn != nil {
		rule := *q.ConditionalOn
		clone.ConditionalOn = &rule
	}

	return &clone
}

// LeadForm is an ordered list of questions plus metadata.
type LeadForm struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"         validate:"required,min=1"`
	WorkspaceID string      `json:"workspace_id"`
	Questions   []*Question `json:"questions"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// QuestionByID returns the question with the given id, or nil when absent.
func (f *LeadForm) QuestionByID(id string) *Question {
	for _, question := range f.Questions {
		if question.ID == id {
			return question
		}
	}

	return nil
}
