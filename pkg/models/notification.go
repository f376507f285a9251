package models

import "strings"

// NotificationSubtype selects which delivery channel a notification node
// uses. The subtype is stored explicitly in config under SubtypeConfigKey
// at node creation; label sniffing remains only as a migration fallback
// for graphs saved before the subtype field existed.
type NotificationSubtype string

const (
	NotificationEmail   NotificationSubtype = "email"
	NotificationSlack   NotificationSubtype = "slack"
	NotificationWebhook NotificationSubtype = "webhook"
)

// SubtypeConfigKey is the config key holding a notification node's subtype.
const SubtypeConfigKey = "subtype"

// Valid reports whether s is a known notification subtype.
func (s NotificationSubtype) Valid() bool {
	switch s {
	case NotificationEmail, NotificationSlack, NotificationWebhook:
		return true
	default:
		return false
	}
}

// NotificationSubtypeOf resolves the subtype of a notification node.
// It prefers the explicit config field and falls back to matching
// substrings of the label for legacy graphs. Unresolvable nodes
// default to email, the most common channel.
func NotificationSubtypeOf(node *Node) NotificationSubtype {
	if node.Config != nil {
		if raw, ok := node.Config[SubtypeConfigKey].(string); ok {
			subtype := NotificationSubtype(raw)
			if subtype.Valid() {
				return subtype
			}
		}
	}

	label := strings.ToLower(node.Label)

	switch {
	case strings.Contains(label, "slack"):
		return NotificationSlack
	case strings.Contains(label, "webhook"):
		return NotificationWebhook
	default:
		return NotificationEmail
	}
}
