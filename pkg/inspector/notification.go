package inspector

import (
	"github.com/launchpadhq/launchpad/pkg/graph"
	"github.com/launchpadhq/launchpad/pkg/models"
)

// Notification configs are a tagged union selected by the node's
// explicit subtype field. Each channel gets its own typed view; the
// subtype is written back on every commit so it can never drift from
// the fields it selects.

// EmailNotificationConfig configures an email notification node.
type EmailNotificationConfig struct {
	To       string
	Subject  string
	Template string
	Body     string
	Extra    map[string]any
}

// SlackNotificationConfig configures a Slack notification node.
type SlackNotificationConfig struct {
	Channel string
	Message string
	Mention string
	Extra   map[string]any
}

// WebhookNotificationConfig configures a webhook notification node.
type WebhookNotificationConfig struct {
	URL     string
	Method  string
	Headers map[string]string
	Payload map[string]any
	Extra   map[string]any
}

// EmailConfigOf reads an email notification config, applying defaults.
func EmailConfigOf(node *models.Node) EmailNotificationConfig {
	return EmailNotificationConfig{
		To:       asString(node.Config, "to", "team@example.com"),
		Subject:  asString(node.Config, "subject", "Workflow update"),
		Template: asString(node.Config, "template", ""),
		Body:     asString(node.Config, "body", ""),
		Extra:    extraKeys(node.Config, models.SubtypeConfigKey, "to", "subject", "template", "body"),
	}
}

// SlackConfigOf reads a Slack notification config, applying defaults.
func SlackConfigOf(node *models.Node) SlackNotificationConfig {
	return SlackNotificationConfig{
		Channel: asString(node.Config, "channel", "#campaigns"),
		Message: asString(node.Config, "message", ""),
		Mention: asString(node.Config, "mention", ""),
		Extra:   extraKeys(node.Config, models.SubtypeConfigKey, "channel", "message", "mention"),
	}
}

// WebhookConfigOf reads a webhook notification config, applying defaults.
func WebhookConfigOf(node *models.Node) WebhookNotificationConfig {
	payload, _ := node.Config["payload"].(map[string]any)

	return WebhookNotificationConfig{
		URL:     asString(node.Config, "url", ""),
		Method:  asString(node.Config, "method", "POST"),
		Headers: asStringMap(node.Config, "headers"),
		Payload: models.CloneConfig(payload),
		Extra:   extraKeys(node.Config, models.SubtypeConfigKey, "url", "method", "headers", "payload"),
	}
}

// SetEmailConfig writes an email view back to the node and pins the
// subtype to email.
func (i *Inspector) SetEmailConfig(nodeID string, cfg EmailNotificationConfig) (*models.Node, error) {
	config := mergeExtra(cfg.Extra, map[string]any{
		models.SubtypeConfigKey: string(models.NotificationEmail),
		"to":                    cfg.To,
		"subject":               cfg.Subject,
		"template":              cfg.Template,
		"body":                  cfg.Body,
	})

	return i.editor.UpdateNode(nodeID, graph.NodePatch{Config: config})
}

// SetSlackConfig writes a Slack view back to the node and pins the
// subtype to slack.
func (i *Inspector) SetSlackConfig(nodeID string, cfg SlackNotificationConfig) (*models.Node, error) {
	config := mergeExtra(cfg.Extra, map[string]any{
		models.SubtypeConfigKey: string(models.NotificationSlack),
		"channel":               cfg.Channel,
		"message":               cfg.Message,
		"mention":               cfg.Mention,
	})

	return i.editor.UpdateNode(nodeID, graph.NodePatch{Config: config})
}

// SetWebhookConfig writes a webhook view back to the node and pins the
// subtype to webhook.
func (i *Inspector) SetWebhookConfig(nodeID string, cfg WebhookNotificationConfig) (*models.Node, error) {
	headers := make(map[string]any, len(cfg.Headers))
	for key, value := range cfg.Headers {
		headers[key] = value
	}

	config := mergeExtra(cfg.Extra, map[string]any{
		models.SubtypeConfigKey: string(models.NotificationWebhook),
		"url":                   cfg.URL,
		"method":                cfg.Method,
		"headers":               headers,
		"payload":               cfg.Payload,
	})

	return i.editor.UpdateNode(nodeID, graph.NodePatch{Config: config})
}
