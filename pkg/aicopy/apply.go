package aicopy

import (
	"github.com/launchpadhq/launchpad/pkg/graph"
	"github.com/launchpadhq/launchpad/pkg/models"
)

// A user can keep editing while a generation request is in flight, so a
// response that arrives late must not clobber newer edits. Each request
// captures a Ticket holding the graph version at issue time; Apply
// compares it against the current version and discards mismatches.

// Ticket tags one in-flight generation request with its target node and
// the graph version observed when the request was issued.
type Ticket struct {
	NodeID  string
	Version int64
}

// NewTicket stamps a request against the editor's current state.
func NewTicket(editor *graph.Editor, nodeID string) Ticket {
	return Ticket{NodeID: nodeID, Version: editor.Version()}
}

// Applier commits generation results back into the graph.
type Applier struct {
	editor *graph.Editor
}

// NewApplier creates an applier bound to one editor session.
func NewApplier(editor *graph.Editor) *Applier {
	return &Applier{editor: editor}
}

// ApplyVariations writes variations into the target node's config under
// the "variations" key. A version mismatch means the graph moved on
// since the request was issued; the response is dropped with
// ErrStaleResponse and the graph stays untouched.
func (a *Applier) ApplyVariations(ticket Ticket, variations []Variation) error {
	if a.editor.Version() != ticket.Version {
		return ErrStaleResponse
	}

	node := a.editor.Graph().NodeByID(ticket.NodeID)
	if node == nil {
		return graph.NewMutationError("ApplyVariations", ticket.NodeID, graph.ErrNodeNotFound)
	}

	stored := make([]any, len(variations))

	for i, variation := range variations {
		entry := map[string]any{}

		if variation.Headline != "" {
			entry["headline"] = variation.Headline
		}

		if variation.Description != "" {
			entry["description"] = variation.Description
		}

		if variation.CTA != "" {
			entry["cta"] = variation.CTA
		}

		for key, value := range variation.Extra {
			entry[key] = value
		}

		stored[i] = entry
	}

	config := models.CloneConfig(node.Config)
	if config == nil {
		config = map[string]any{}
	}

	config["variations"] = stored

	_, err := a.editor.UpdateNode(ticket.NodeID, graph.NodePatch{Config: config})

	return err
}
