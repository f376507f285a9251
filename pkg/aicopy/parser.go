package aicopy

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The generation backend answers with free-form model text more often
// than clean JSON. Decoding works through a strategy chain: direct JSON
// parse, then extraction of a fenced or bracketed block, then repair of
// almost-JSON (single quotes, Python literals, trailing commas), and
// finally treating the whole string as one free-text suggestion. Only a
// blank response fails.

var (
	fenceRe         = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	pythonLiteralRe = regexp.MustCompile(`\b(True|False|None)\b`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// ParseJSON coerces free-form model output into a decoded JSON value.
func ParseJSON(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &ParseError{Strategy: "direct", Err: ErrRemoteParse}
	}

	// Strategy 1: the response is already valid JSON.
	var direct any
	if err := json.Unmarshal([]byte(trimmed), &direct); err == nil {
		return direct, nil
	}

	// Strategy 2: pull the payload out of a code fence or locate the
	// first bracketed block.
	candidate := extractBlock(trimmed)
	if candidate != "" {
		var extracted any
		if err := json.Unmarshal([]byte(candidate), &extracted); err == nil {
			return extracted, nil
		}

		// Strategy 3: repair almost-JSON and retry.
		repaired := repairJSON(candidate)

		var fixed any
		if err := json.Unmarshal([]byte(repaired), &fixed); err == nil {
			return fixed, nil
		}
	}

	// Repair can also apply to the whole string when no block was found.
	repaired := repairJSON(trimmed)

	var fixed any
	if err := json.Unmarshal([]byte(repaired), &fixed); err == nil {
		return fixed, nil
	}

	return nil, &ParseError{Strategy: "repair", Err: ErrRemoteParse}
}

// extractBlock returns the most promising JSON candidate inside raw: the
// body of the first code fence if present, otherwise the span from the
// first opening brace/bracket to its matching last closer.
func extractBlock(raw string) string {
	if match := fenceRe.FindStringSubmatch(raw); match != nil {
		return strings.TrimSpace(match[1])
	}

	objStart := strings.IndexByte(raw, '{')
	arrStart := strings.IndexByte(raw, '[')

	start, closer := objStart, byte('}')
	if start < 0 || (arrStart >= 0 && arrStart < start) {
		start, closer = arrStart, ']'
	}

	if start < 0 {
		return ""
	}

	end := strings.LastIndexByte(raw, closer)
	if end <= start {
		return ""
	}

	return raw[start : end+1]
}

// repairJSON normalizes the almost-JSON dialects models emit: single
// quoted strings, Python booleans and None, and trailing commas.
func repairJSON(candidate string) string {
	repaired := candidate

	// Swap quote style only when the text carries no double quotes at
	// all; mixing would corrupt apostrophes inside valid strings.
	if !strings.Contains(repaired, `"`) && strings.Contains(repaired, `'`) {
		repaired = strings.ReplaceAll(repaired, `'`, `"`)
	}

	repaired = pythonLiteralRe.ReplaceAllStringFunc(repaired, func(literal string) string {
		switch literal {
		case "True":
			return "true"
		case "False":
			return "false"
		default:
			return "null"
		}
	})

	return trailingCommaRe.ReplaceAllString(repaired, "$1")
}

// Variation is one AI-generated creative suggestion. Unrecognized fields
// ride along in Extra.
type Variation struct {
	Headline    string         `json:"headline,omitempty"`
	Description string         `json:"description,omitempty"`
	CTA         string         `json:"cta,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
}

// ExtractVariations coerces model output into creative variations. The
// final fallback treats the whole response as a single free-text
// suggestion, so only a blank response returns ErrRemoteParse.
func ExtractVariations(raw string) ([]Variation, error) {
	doc, err := ParseJSON(raw)
	if err != nil {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return nil, err
		}

		// Strategy 4: one free-text suggestion.
		return []Variation{{Description: trimmed}}, nil
	}

	variations := coerceVariations(doc)
	if variations == nil {
		trimmed := strings.TrimSpace(raw)

		return []Variation{{Description: trimmed}}, nil
	}

	return variations, nil
}

func coerceVariations(doc any) []Variation {
	switch value := doc.(type) {
	case []any:
		return variationsFromList(value)
	case map[string]any:
		if list, ok := value["variations"].([]any); ok {
			return variationsFromList(list)
		}

		// Some backends wrap the payload in a raw-text field.
		for _, key := range []string{"raw", "text", "content"} {
			if nested, ok := value[key].(string); ok {
				if parsed, err := ExtractVariations(nested); err == nil {
					return parsed
				}
			}
		}

		// A bare single variation object.
		if _, ok := value["headline"]; ok {
			return variationsFromList([]any{value})
		}

		if _, ok := value["description"]; ok {
			return variationsFromList([]any{value})
		}
	}

	return nil
}

func variationsFromList(list []any) []Variation {
	variations := make([]Variation, 0, len(list))

	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			if text, ok := item.(string); ok && strings.TrimSpace(text) != "" {
				variations = append(variations, Variation{Description: strings.TrimSpace(text)})
			}

			continue
		}

		variation := Variation{Extra: map[string]any{}}

		for key, value := range entry {
			text, isString := value.(string)

			switch key {
			case "headline":
				if isString {
					variation.Headline = text

					continue
				}
			case "description":
				if isString {
					variation.Description = text

					continue
				}
			case "cta", "call_to_action":
				if isString {
					variation.CTA = text

					continue
				}
			}

			variation.Extra[key] = value
		}

		if len(variation.Extra) == 0 {
			variation.Extra = nil
		}

		variations = append(variations, variation)
	}

	if len(variations) == 0 {
		return nil
	}

	return variations
}
