package inspector

import (
	"github.com/launchpadhq/launchpad/pkg/graph"
	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/registry"
)

// Inspector edits the config of the currently selected node. All writes
// go through the editor's UpdateNode so mutation semantics (version
// bump, not-found handling) stay in one place.
type Inspector struct {
	editor   *graph.Editor
	registry *registry.Registry
}

func New(editor *graph.Editor, reg *registry.Registry) *Inspector {
	return &Inspector{editor: editor, registry: reg}
}

// TriggerConfig configures a trigger node. Schedule is a cron-like
// string treated as opaque; CheckSchedule offers advisory parsing.
type TriggerConfig struct {
	Schedule string
	Extra    map[string]any
}

// TriggerConfigOf reads a trigger node's config, applying defaults.
func TriggerConfigOf(node *models.Node) TriggerConfig {
	return TriggerConfig{
		Schedule: asString(node.Config, "schedule", "0 9 * * *"),
		Extra:    extraKeys(node.Config, "schedule"),
	}
}

// SetTriggerConfig writes the view back to the node.
func (i *Inspector) SetTriggerConfig(nodeID string, cfg TriggerConfig) (*models.Node, error) {
	config := mergeExtra(cfg.Extra, map[string]any{
		"schedule": cfg.Schedule,
	})

	return i.editor.UpdateNode(nodeID, graph.NodePatch{Config: config})
}

// ComparisonConfig configures selector and condition nodes; the two
// kinds share a schema and differ only in graph role.
type ComparisonConfig struct {
	Metric   string
	Operator string
	Value    float64
	Extra    map[string]any
}

// SelectorConfigOf reads a selector node's config, applying defaults.
func SelectorConfigOf(node *models.Node) ComparisonConfig {
	return comparisonConfigOf(node, "roas", "<")
}

// ConditionConfigOf reads a condition node's config, applying defaults.
func ConditionConfigOf(node *models.Node) ComparisonConfig {
	return comparisonConfigOf(node, "spend", ">")
}

func comparisonConfigOf(node *models.Node, defaultMetric, defaultOperator string) ComparisonConfig {
	return ComparisonConfig{
		Metric:   asString(node.Config, "metric", defaultMetric),
		Operator: asString(node.Config, "operator", defaultOperator),
		Value:    asFloat(node.Config, "value", 0),
		Extra:    extraKeys(node.Config, "metric", "operator", "value"),
	}
}

// SetComparisonConfig writes a selector/condition view back to the node.
func (i *Inspector) SetComparisonConfig(nodeID string, cfg ComparisonConfig) (*models.Node, error) {
	config := mergeExtra(cfg.Extra, map[string]any{
		"metric":   cfg.Metric,
		"operator": cfg.Operator,
		"value":    cfg.Value,
	})

	return i.editor.UpdateNode(nodeID, graph.NodePatch{Config: config})
}

// ActionConfig configures an action node.
type ActionConfig struct {
	AdjustmentType string
	ChangePct      float64
	Extra          map[string]any
}

// ActionConfigOf reads an action node's config, applying defaults.
func ActionConfigOf(node *models.Node) ActionConfig {
	return ActionConfig{
		AdjustmentType: asString(node.Config, "adjustment_type", "pause"),
		ChangePct:      asFloat(node.Config, "change_pct", 0),
		Extra:          extraKeys(node.Config, "adjustment_type", "change_pct"),
	}
}

// SetActionConfig writes the view back to the node.
func (i *Inspector) SetActionConfig(nodeID string, cfg ActionConfig) (*models.Node, error) {
	config := mergeExtra(cfg.Extra, map[string]any{
		"adjustment_type": cfg.AdjustmentType,
		"change_pct":      cfg.ChangePct,
	})

	return i.editor.UpdateNode(nodeID, graph.NodePatch{Config: config})
}

// ApprovalConfig configures an approval node. TTLHours bounds how long
// the request waits before expiring.
type ApprovalConfig struct {
	Approvers []string
	TTLHours  int
	Extra     map[string]any
}

// ApprovalConfigOf reads an approval node's config, applying defaults.
func ApprovalConfigOf(node *models.Node) ApprovalConfig {
	return ApprovalConfig{
		Approvers: asStringSlice(node.Config, "approvers"),
		TTLHours:  asInt(node.Config, "ttl", 24),
		Extra:     extraKeys(node.Config, "approvers", "ttl"),
	}
}

// SetApprovalConfig writes the view back to the node.
func (i *Inspector) SetApprovalConfig(nodeID string, cfg ApprovalConfig) (*models.Node, error) {
	approvers := make([]any, len(cfg.Approvers))
	for idx, approver := range cfg.Approvers {
		approvers[idx] = approver
	}

	config := mergeExtra(cfg.Extra, map[string]any{
		"approvers": approvers,
		"ttl":       cfg.TTLHours,
	})

	return i.editor.UpdateNode(nodeID, graph.NodePatch{Config: config})
}

// AIConfig configures an ai node.
type AIConfig struct {
	Model string
	Count int
	Type  string
	Extra map[string]any
}

// AIConfigOf reads an ai node's config, applying defaults.
func AIConfigOf(node *models.Node) AIConfig {
	return AIConfig{
		Model: asString(node.Config, "model", "copy-gen-1"),
		Count: asInt(node.Config, "count", 3),
		Type:  asString(node.Config, "type", "ad_copy"),
		Extra: extraKeys(node.Config, "model", "count", "type"),
	}
}

// SetAIConfig writes the view back to the node.
func (i *Inspector) SetAIConfig(nodeID string, cfg AIConfig) (*models.Node, error) {
	config := mergeExtra(cfg.Extra, map[string]any{
		"model": cfg.Model,
		"count": cfg.Count,
		"type":  cfg.Type,
	})

	return i.editor.UpdateNode(nodeID, graph.NodePatch{Config: config})
}

// DataPrivacyMode controls how much raw performance data an analytics
// node is allowed to retain.
type DataPrivacyMode string

const (
	DataPrivacyAnonymized DataPrivacyMode = "anonymized"
	DataPrivacyFull       DataPrivacyMode = "full"
	DataPrivacySummary    DataPrivacyMode = "summary"
)

// Valid reports whether m is a known privacy mode.
func (m DataPrivacyMode) Valid() bool {
	switch m {
	case DataPrivacyAnonymized, DataPrivacyFull, DataPrivacySummary:
		return true
	default:
		return false
	}
}

// AnalyticsConfig configures an analytics node.
type AnalyticsConfig struct {
	DataPrivacy DataPrivacyMode
	Extra       map[string]any
}

// AnalyticsConfigOf reads an analytics node's config, applying defaults.
func AnalyticsConfigOf(node *models.Node) AnalyticsConfig {
	mode := DataPrivacyMode(asString(node.Config, "data_privacy", string(DataPrivacyAnonymized)))
	if !mode.Valid() {
		mode = DataPrivacyAnonymized
	}

	return AnalyticsConfig{
		DataPrivacy: mode,
		Extra:       extraKeys(node.Config, "data_privacy"),
	}
}

// SetAnalyticsConfig writes the view back to the node.
func (i *Inspector) SetAnalyticsConfig(nodeID string, cfg AnalyticsConfig) (*models.Node, error) {
	config := mergeExtra(cfg.Extra, map[string]any{
		"data_privacy": string(cfg.DataPrivacy),
	})

	return i.editor.UpdateNode(nodeID, graph.NodePatch{Config: config})
}

// mergeExtra rebuilds a config map from a view's declared fields plus
// its preserved extension bag. Declared fields win on key collision.
func mergeExtra(extra, declared map[string]any) map[string]any {
	config := make(map[string]any, len(extra)+len(declared))

	for key, value := range extra {
		config[key] = value
	}

	for key, value := range declared {
		config[key] = value
	}

	return config
}
