// Package registry defines the closed set of node kinds and the default
// label and config shape each kind carries. Pure data plus lookup; the
// registry never mutates a graph.
package registry

import (
	"fmt"
	"log/slog"

	"github.com/launchpadhq/launchpad/pkg/models"
)

// Defaults is the seed label and config a freshly created node of a kind
// starts with. Config is cloned on every lookup so callers can mutate
// the result freely.
type Defaults struct {
	Label  string
	Config map[string]any
}

type Registry struct {
	logger   *slog.Logger
	defaults map[models.NodeKind]Defaults
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		logger:   log,
		defaults: builtinDefaults(),
	}
}

// IsValidKind reports whether the string names a registered node kind.
func (r *Registry) IsValidKind(kind string) bool {
	_, ok := r.defaults[models.NodeKind(kind)]

	return ok
}

// DefaultsFor returns the default label and config for a kind.
func (r *Registry) DefaultsFor(kind models.NodeKind) (Defaults, error) {
	defaults, ok := r.defaults[kind]
	if !ok {
		return Defaults{}, fmt.Errorf("node kind '%s' not registered", kind)
	}

	return Defaults{
		Label:  defaults.Label,
		Config: models.CloneConfig(defaults.Config),
	}, nil
}

// Kinds returns the registered kinds in declaration order.
func (r *Registry) Kinds() []models.NodeKind {
	kinds := make([]models.NodeKind, 0, len(r.defaults))
	for _, kind := range models.NodeKinds() {
		if _, ok := r.defaults[kind]; ok {
			kinds = append(kinds, kind)
		}
	}

	return kinds
}

// HealthCheck reports whether the registry has its built-in kinds loaded.
func (r *Registry) HealthCheck() (string, bool) {
	if len(r.defaults) == 0 {
		return "Registry has no node kinds registered", false
	}

	return fmt.Sprintf("Registry is healthy with %d node kinds", len(r.defaults)), true
}

func builtinDefaults() map[models.NodeKind]Defaults {
	return map[models.NodeKind]Defaults{
		models.NodeKindTrigger: {
			Label: "Schedule Trigger",
			Config: map[string]any{
				"schedule": "0 9 * * *",
			},
		},
		models.NodeKindSelector: {
			Label: "Select Campaigns",
			Config: map[string]any{
				"metric":   "roas",
				"operator": "<",
				"value":    1.0,
			},
		},
		models.NodeKindCondition: {
			Label: "Check Condition",
			Config: map[string]any{
				"metric":   "spend",
				"operator": ">",
				"value":    100.0,
			},
		},
		models.NodeKindAction: {
			Label: "Apply Change",
			Config: map[string]any{
				"adjustment_type": "pause",
				"change_pct":      0.0,
			},
		},
		models.NodeKindApproval: {
			Label: "Request Approval",
			Config: map[string]any{
				"approvers": []any{},
				"ttl":       24,
			},
		},
		models.NodeKindNotification: {
			Label: "Send Email",
			Config: map[string]any{
				models.SubtypeConfigKey: string(models.NotificationEmail),
				"to":                    "team@example.com",
				"subject":               "Workflow update",
			},
		},
		models.NodeKindAI: {
			Label: "Generate Variations",
			Config: map[string]any{
				"model": "copy-gen-1",
				"count": 3,
				"type":  "ad_copy",
			},
		},
		models.NodeKindAnalytics: {
			Label: "Collect Metrics",
			Config: map[string]any{
				"data_privacy": "anonymized",
			},
		},
	}
}
