// Package catalog holds the built-in workflow templates and instantiates
// them into editable graph fragments. Template node ids are catalog-local
// literals reused across templates, so every instantiation remaps ids to
// fresh uuids and rewrites edge endpoints before the fragment is handed
// to a live graph.
package catalog

import (
	"errors"

	"github.com/google/uuid"
	"github.com/launchpadhq/launchpad/pkg/models"
)

// ErrTemplateNotFound indicates no template exists with the given id.
var ErrTemplateNotFound = errors.New("template not found")

// Instance is a freshly-cloned, id-remapped template ready to merge into
// a graph via graph.Editor.Merge.
type Instance struct {
	TemplateID string
	Nodes      []*models.Node
	Edges      []*models.Edge
}

type Catalog struct {
	templates []*models.Template
}

// NewCatalog builds a catalog seeded with the built-in templates.
func NewCatalog() *Catalog {
	return &Catalog{templates: builtinTemplates()}
}

// List returns all templates, or only those matching the category filter.
// An unmatched filter yields an empty slice, never an error.
func (c *Catalog) List(category string) []*models.Template {
	if category == "" {
		result := make([]*models.Template, len(c.templates))
		copy(result, c.templates)

		return result
	}

	result := make([]*models.Template, 0)

	for _, template := range c.templates {
		if template.Category == category {
			result = append(result, template)
		}
	}

	return result
}

// ByID returns the template with the given id.
func (c *Catalog) ByID(id string) (*models.Template, error) {
	for _, template := range c.templates {
		if template.ID == id {
			return template, nil
		}
	}

	return nil, ErrTemplateNotFound
}

// Categories returns the distinct template categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)

	for _, template := range c.templates {
		if !seen[template.Category] {
			seen[template.Category] = true

			categories = append(categories, template.Category)
		}
	}

	return categories
}

// Instantiate deep-clones the template and remaps every node id to a
// fresh uuid, rewriting edge source/target references to match. Two
// instantiations of the same template therefore produce disjoint id
// spaces and can be merged into one graph without collisions. Edges
// referencing a node id the template never declares are pruned.
func (c *Catalog) Instantiate(template *models.Template) *Instance {
	remap := make(map[string]string, len(template.Nodes))

	nodes := make([]*models.Node, 0, len(template.Nodes))

	for _, templateNode := range template.Nodes {
		node := templateNode.Clone()
		remap[templateNode.ID] = uuid.New().String()
		node.ID = remap[templateNode.ID]
		node.Status = models.NodeStatusIdle

		nodes = append(nodes, node)
	}

	edges := make([]*models.Edge, 0, len(template.Edges))

	for _, templateEdge := range template.Edges {
		source, sourceOK := remap[templateEdge.Source]

		target, targetOK := remap[templateEdge.Target]
		if !sourceOK || !targetOK {
			continue
		}

		edge := templateEdge.Clone()
		edge.ID = uuid.New().String()
		edge.Source = source
		edge.Target = target

		edges = append(edges, edge)
	}

	return &Instance{
		TemplateID: template.ID,
		Nodes:      nodes,
		Edges:      edges,
	}
}
