package aicopy

import (
	"strings"

	"github.com/google/uuid"
	"github.com/launchpadhq/launchpad/pkg/models"
)

// The lead-form generation endpoint is deliberately loose about where it
// puts the question list. NormalizeQuestions accepts every shape seen in
// the wild: form.questions, questions, data, lead_form.questions, items,
// or a bare top-level array.

// NormalizeQuestions coerces model output into lead-form questions.
func NormalizeQuestions(raw string) ([]*models.Question, error) {
	doc, err := ParseJSON(raw)
	if err != nil {
		return nil, err
	}

	list := locateQuestionList(doc)
	if list == nil {
		return nil, &ParseError{Strategy: "locate", Err: ErrRemoteParse}
	}

	questions := make([]*models.Question, 0, len(list))

	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		if question := questionFromMap(entry); question != nil {
			questions = append(questions, question)
		}
	}

	if len(questions) == 0 {
		return nil, &ParseError{Strategy: "coerce", Err: ErrRemoteParse}
	}

	return questions, nil
}

func locateQuestionList(doc any) []any {
	if list, ok := doc.([]any); ok {
		return list
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil
	}

	for _, key := range []string{"questions", "data", "items"} {
		if list, ok := root[key].([]any); ok {
			return list
		}
	}

	for _, key := range []string{"form", "lead_form"} {
		if nested, ok := root[key].(map[string]any); ok {
			if list, ok := nested["questions"].([]any); ok {
				return list
			}
		}
	}

	return nil
}

func questionFromMap(entry map[string]any) *models.Question {
	label, _ := entry["label"].(string)
	if label == "" {
		// Some models emit "question" or "title" instead.
		if alt, ok := entry["question"].(string); ok {
			label = alt
		} else if alt, ok := entry["title"].(string); ok {
			label = alt
		}
	}

	if strings.TrimSpace(label) == "" {
		return nil
	}

	rawType, _ := entry["type"].(string)

	questionType := models.QuestionType(strings.ToUpper(strings.TrimSpace(rawType)))
	if !questionType.Valid() {
		questionType = models.QuestionTypeText
	}

	required, _ := entry["required"].(bool)
	placeholder, _ := entry["placeholder"].(string)
	helpText, _ := entry["help_text"].(string)

	// Model-echoed ids are discarded: models repeat ids across entries,
	// and a duplicate landing in one form would break QuestionByID and
	// conditional-rule resolution. Every generated question gets a
	// fresh id, the same remap discipline template instantiation uses.
	question := &models.Question{
		ID:          uuid.New().String(),
		Type:        questionType,
		Label:       strings.TrimSpace(label),
		Required:    required,
		Placeholder: placeholder,
		HelpText:    helpText,
	}

	if questionType.SupportsOptions() {
		question.Options = stringList(entry["options"])
	}

	return question
}

func stringList(value any) []string {
	list, ok := value.([]any)
	if !ok {
		return []string{}
	}

	result := make([]string, 0, len(list))

	for _, item := range list {
		if text, ok := item.(string); ok {
			result = append(result, text)
		}
	}

	return result
}
