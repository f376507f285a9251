package models

// TemplateComplexity rates how much configuration a template needs
// before it is ready to run.
type TemplateComplexity string

const (
	TemplateComplexitySimple   TemplateComplexity = "simple"
	TemplateComplexityModerate TemplateComplexity = "moderate"
	TemplateComplexityAdvanced TemplateComplexity = "advanced"
)

// Template is an immutable, pre-built graph used to seed a new workflow.
// Node and edge ids inside a template are catalog-local literals reused
// across templates; instantiation remaps them to fresh ids before any
// template content reaches a live graph.
type Template struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	Complexity      TemplateComplexity `json:"complexity"`
	EstimatedImpact string             `json:"estimated_impact,omitempty"`
	Nodes           []*Node            `json:"nodes"`
	Edges           []*Edge            `json:"edges"`
}
