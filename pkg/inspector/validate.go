package inspector

import (
	"errors"
	"fmt"

	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/robfig/cron/v3"
)

// ErrBadSchedule indicates a trigger schedule did not parse as a
// standard 5-field cron expression. Advisory only: the schedule stays
// an opaque string on the node either way.
var ErrBadSchedule = errors.New("schedule is not a valid cron expression")

// CheckSchedule parses a trigger schedule as a 5-field cron expression
// and reports whether it is well formed. The node keeps whatever string
// the user typed; the execution backend has the final say.
func CheckSchedule(schedule string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

	_, err := parser.Parse(schedule)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBadSchedule, err.Error())
	}

	return nil
}

// Problem is a per-node validation finding surfaced next to the
// inspector panel.
type Problem struct {
	NodeID  string `json:"node_id"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidateNode checks the shape constraints the inspector enforces
// before a graph is handed off for execution: an approval node needs at
// least one approver, a notification node needs a resolvable subtype,
// and every config must satisfy its kind's schema. Findings are
// returned, never thrown; the editor stays usable throughout.
func (i *Inspector) ValidateNode(node *models.Node) []Problem {
	var problems []Problem

	violations, err := i.registry.ValidateConfig(node.Kind, node.Config)
	if err == nil {
		for _, violation := range violations {
			problems = append(problems, Problem{NodeID: node.ID, Message: violation})
		}
	}

	switch node.Kind {
	case models.NodeKindTrigger:
		cfg := TriggerConfigOf(node)
		if scheduleErr := CheckSchedule(cfg.Schedule); scheduleErr != nil {
			problems = append(problems, Problem{
				NodeID:  node.ID,
				Field:   "schedule",
				Message: scheduleErr.Error(),
			})
		}
	case models.NodeKindApproval:
		cfg := ApprovalConfigOf(node)
		if len(cfg.Approvers) == 0 {
			problems = append(problems, Problem{
				NodeID:  node.ID,
				Field:   "approvers",
				Message: "approval node needs at least one approver",
			})
		}
	case models.NodeKindNotification:
		subtype := models.NotificationSubtypeOf(node)
		if subtype == models.NotificationWebhook {
			cfg := WebhookConfigOf(node)
			if cfg.URL == "" {
				problems = append(problems, Problem{
					NodeID:  node.ID,
					Field:   "url",
					Message: "webhook notification needs a target url",
				})
			}
		}
	case models.NodeKindAI:
		cfg := AIConfigOf(node)
		if cfg.Count < 1 {
			problems = append(problems, Problem{
				NodeID:  node.ID,
				Field:   "count",
				Message: "variation count must be at least 1",
			})
		}
	}

	return problems
}

// ValidateGraph runs ValidateNode over every node in the session.
func (i *Inspector) ValidateGraph() []Problem {
	var problems []Problem

	for _, node := range i.editor.Graph().Nodes {
		problems = append(problems, i.ValidateNode(node)...)
	}

	return problems
}
