// Package registry provides JSON Schema validation for per-kind node configs.
package registry

import (
	"fmt"

	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/xeipuuv/gojsonschema"
)

// ValidateConfig checks a config map against the kind's schema and
// returns human-readable violations. Keys a kind does not declare pass
// through unvalidated; the schemas are deliberately open so forward
// compatible extension fields survive older editors.
func (r *Registry) ValidateConfig(kind models.NodeKind, config map[string]any) ([]string, error) {
	schema, ok := configSchemas()[kind]
	if !ok {
		return nil, fmt.Errorf("node kind '%s' not registered", kind)
	}

	if config == nil {
		config = map[string]any{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(config),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, violation := range result.Errors() {
		violations = append(violations, violation.String())
	}

	return violations, nil
}

// configSchemas returns the JSON Schema for each kind's config. Only the
// shape of declared keys is constrained; additional properties stay legal.
func configSchemas() map[models.NodeKind]map[string]any {
	comparison := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"metric":   map[string]any{"type": "string"},
			"operator": map[string]any{"type": "string"},
			"value":    map[string]any{"type": []string{"number", "string"}},
		},
	}

	return map[models.NodeKind]map[string]any{
		models.NodeKindTrigger: {
			"type": "object",
			"properties": map[string]any{
				// Cron-like, but treated as opaque here; the inspector
				// offers advisory parsing separately.
				"schedule": map[string]any{"type": "string"},
			},
		},
		models.NodeKindSelector:  comparison,
		models.NodeKindCondition: comparison,
		models.NodeKindAction: {
			"type": "object",
			"properties": map[string]any{
				"adjustment_type": map[string]any{"type": "string"},
				"change_pct":      map[string]any{"type": "number"},
			},
		},
		models.NodeKindApproval: {
			"type": "object",
			"properties": map[string]any{
				"approvers": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"ttl": map[string]any{"type": "number"},
			},
		},
		models.NodeKindNotification: {
			"type": "object",
			"properties": map[string]any{
				models.SubtypeConfigKey: map[string]any{
					"type": "string",
					"enum": []string{
						string(models.NotificationEmail),
						string(models.NotificationSlack),
						string(models.NotificationWebhook),
					},
				},
				"to":       map[string]any{"type": "string"},
				"subject":  map[string]any{"type": "string"},
				"template": map[string]any{"type": "string"},
				"body":     map[string]any{"type": "string"},
				"channel":  map[string]any{"type": "string"},
				"message":  map[string]any{"type": "string"},
				"mention":  map[string]any{"type": "string"},
				"url":      map[string]any{"type": "string"},
				"method":   map[string]any{"type": "string"},
				"headers":  map[string]any{"type": "object"},
				"payload":  map[string]any{"type": "object"},
			},
		},
		models.NodeKindAI: {
			"type": "object",
			"properties": map[string]any{
				"model": map[string]any{"type": "string"},
				"count": map[string]any{"type": "number", "minimum": 1},
				"type":  map[string]any{"type": "string"},
			},
		},
		models.NodeKindAnalytics: {
			"type": "object",
			"properties": map[string]any{
				"data_privacy": map[string]any{
					"type": "string",
					"enum": []string{"anonymized", "full", "summary"},
				},
			},
		},
	}
}
