package catalog

import "github.com/launchpadhq/launchpad/pkg/models"

// Template categories.
const (
	CategoryOptimization = "optimization"
	CategoryBudget       = "budget"
	CategoryGovernance   = "governance"
	CategoryReporting    = "reporting"
)

// builtinTemplates returns the pre-built automations offered to every
// workspace. Node and edge ids are catalog-local literals; they are
// remapped on instantiation and never reach a live graph as-is.
func builtinTemplates() []*models.Template {
	return []*models.Template{
		{
			ID:              "pause-underperformers",
			Name:            "Pause Underperformers",
			Description:     "Checks campaign ROAS every morning and pauses anything below target, then tells the team.",
			Category:        CategoryOptimization,
			Complexity:      models.TemplateComplexitySimple,
			EstimatedImpact: "Cuts wasted spend within one day",
			Nodes: []*models.Node{
				{
					ID:    "trigger-1",
					Kind:  models.NodeKindTrigger,
					Label: "Daily at 9am",
					Config: map[string]any{
						"schedule": "0 9 * * *",
					},
					Position: models.Position{X: 0, Y: 120},
				},
				{
					ID:    "selector-1",
					Kind:  models.NodeKindSelector,
					Label: "ROAS below 1.0",
					Config: map[string]any{
						"metric":   "roas",
						"operator": "<",
						"value":    1.0,
					},
					Position: models.Position{X: 240, Y: 120},
				},
				{
					ID:    "action-1",
					Kind:  models.NodeKindAction,
					Label: "Pause campaigns",
					Config: map[string]any{
						"adjustment_type": "pause",
					},
					Position: models.Position{X: 480, Y: 120},
				},
				{
					ID:    "notification-1",
					Kind:  models.NodeKindNotification,
					Label: "Send Email",
					Config: map[string]any{
						models.SubtypeConfigKey: string(models.NotificationEmail),
						"to":                    "team@example.com",
						"subject":               "Campaigns paused automatically",
					},
					Position: models.Position{X: 720, Y: 120},
				},
			},
			Edges: []*models.Edge{
				{ID: "edge-1", Source: "trigger-1", Target: "selector-1"},
				{ID: "edge-2", Source: "selector-1", Target: "action-1"},
				{ID: "edge-3", Source: "action-1", Target: "notification-1"},
			},
		},
		{
			ID:              "budget-rebalancer",
			Name:            "Budget Rebalancer",
			Description:     "Moves budget from low performers to winners twice a week.",
			Category:        CategoryBudget,
			Complexity:      models.TemplateComplexityModerate,
			EstimatedImpact: "Typically 10-20% better spend efficiency",
			Nodes: []*models.Node{
				{
					ID:    "trigger-1",
					Kind:  models.NodeKindTrigger,
					Label: "Mon/Thu at 7am",
					Config: map[string]any{
						"schedule": "0 7 * * 1,4",
					},
					Position: models.Position{X: 0, Y: 120},
				},
				{
					ID:    "selector-1",
					Kind:  models.NodeKindSelector,
					Label: "Top spenders",
					Config: map[string]any{
						"metric":   "spend",
						"operator": ">",
						"value":    500.0,
					},
					Position: models.Position{X: 240, Y: 40},
				},
				{
					ID:    "condition-1",
					Kind:  models.NodeKindCondition,
					Label: "CTR holding up",
					Config: map[string]any{
						"metric":   "ctr",
						"operator": ">",
						"value":    1.5,
					},
					Position: models.Position{X: 480, Y: 40},
				},
				{
					ID:    "action-1",
					Kind:  models.NodeKindAction,
					Label: "Shift 15% budget",
					Config: map[string]any{
						"adjustment_type": "boost",
						"change_pct":      15.0,
					},
					Position: models.Position{X: 720, Y: 40},
				},
				{
					ID:    "action-2",
					Kind:  models.NodeKindAction,
					Label: "Trim 15% budget",
					Config: map[string]any{
						"adjustment_type": "reduce",
						"change_pct":      -15.0,
					},
					Position: models.Position{X: 720, Y: 200},
				},
			},
			Edges: []*models.Edge{
				{ID: "edge-1", Source: "trigger-1", Target: "selector-1"},
				{ID: "edge-2", Source: "selector-1", Target: "condition-1"},
				{ID: "edge-3", Source: "condition-1", Target: "action-1", Type: "condition-true"},
				{ID: "edge-4", Source: "condition-1", Target: "action-2", Type: "condition-false"},
			},
		},
		{
			ID:              "approval-gated-boost",
			Name:            "Approval-Gated Boost",
			Description:     "Flags winning campaigns for a budget boost but waits for a human to sign off.",
			Category:        CategoryGovernance,
			Complexity:      models.TemplateComplexityAdvanced,
			EstimatedImpact: "Safe scaling without surprise spend",
			Nodes: []*models.Node{
				{
					ID:    "trigger-1",
					Kind:  models.NodeKindTrigger,
					Label: "Daily at noon",
					Config: map[string]any{
						"schedule": "0 12 * * *",
					},
					Position: models.Position{X: 0, Y: 120},
				},
				{
					ID:    "selector-1",
					Kind:  models.NodeKindSelector,
					Label: "ROAS above 3.0",
					Config: map[string]any{
						"metric":   "roas",
						"operator": ">",
						"value":    3.0,
					},
					Position: models.Position{X: 240, Y: 120},
				},
				{
					ID:    "approval-1",
					Kind:  models.NodeKindApproval,
					Label: "Manager sign-off",
					Config: map[string]any{
						"approvers": []any{"manager@example.com"},
						"ttl":       48,
					},
					Position: models.Position{X: 480, Y: 120},
				},
				{
					ID:    "action-1",
					Kind:  models.NodeKindAction,
					Label: "Boost 25%",
					Config: map[string]any{
						"adjustment_type": "boost",
						"change_pct":      25.0,
					},
					Position: models.Position{X: 720, Y: 40},
				},
				{
					ID:    "notification-1",
					Kind:  models.NodeKindNotification,
					Label: "Send Slack Update",
					Config: map[string]any{
						models.SubtypeConfigKey: string(models.NotificationSlack),
						"channel":               "#campaigns",
						"message":               "Boost request was declined",
					},
					Position: models.Position{X: 720, Y: 200},
				},
			},
			Edges: []*models.Edge{
				{ID: "edge-1", Source: "trigger-1", Target: "selector-1"},
				{ID: "edge-2", Source: "selector-1", Target: "approval-1"},
				{ID: "edge-3", Source: "approval-1", Target: "action-1", Type: "approval-granted"},
				{ID: "edge-4", Source: "approval-1", Target: "notification-1", Type: "approval-denied"},
			},
		},
		{
			ID:              "weekly-performance-report",
			Name:            "Weekly Performance Report",
			Description:     "Summarizes the week's metrics, drafts commentary with AI and emails the digest.",
			Category:        CategoryReporting,
			Complexity:      models.TemplateComplexityModerate,
			EstimatedImpact: "Saves a reporting afternoon every week",
			Nodes: []*models.Node{
				{
					ID:    "trigger-1",
					Kind:  models.NodeKindTrigger,
					Label: "Fridays at 4pm",
					Config: map[string]any{
						"schedule": "0 16 * * 5",
					},
					Position: models.Position{X: 0, Y: 120},
				},
				{
					ID:    "analytics-1",
					Kind:  models.NodeKindAnalytics,
					Label: "Collect weekly metrics",
					Config: map[string]any{
						"data_privacy": "summary",
					},
					Position: models.Position{X: 240, Y: 120},
				},
				{
					ID:    "ai-1",
					Kind:  models.NodeKindAI,
					Label: "Draft commentary",
					Config: map[string]any{
						"model": "copy-gen-1",
						"count": 1,
						"type":  "report_summary",
					},
					Position: models.Position{X: 480, Y: 120},
				},
				{
					ID:    "notification-1",
					Kind:  models.NodeKindNotification,
					Label: "Send Email",
					Config: map[string]any{
						models.SubtypeConfigKey: string(models.NotificationEmail),
						"to":                    "team@example.com",
						"subject":               "Weekly performance digest",
						"template":              "weekly-digest",
					},
					Position: models.Position{X: 720, Y: 120},
				},
			},
			Edges: []*models.Edge{
				{ID: "edge-1", Source: "trigger-1", Target: "analytics-1"},
				{ID: "edge-2", Source: "analytics-1", Target: "ai-1"},
				{ID: "edge-3", Source: "ai-1", Target: "notification-1"},
			},
		},
	}
}
