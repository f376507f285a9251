// Package file provides file-based persistence for graphs and lead forms.
package file

import (
	"context"
	"os"
	"strings"

	"github.com/launchpadhq/launchpad/pkg/persistence"
)

// Persistence implements the persistence.Persistence interface on the
// local file system. Each graph and form is one JSON document.
type Persistence struct {
	root      string
	graphRepo *GraphRepository
	formRepo  *LeadFormRepository
}

// NewPersistence creates a file persistence layer rooted at the given
// directory. Accepts both a bare path and a file:// URL.
func NewPersistence(root string) persistence.Persistence {
	cleanRoot := strings.Replace(root, "file://", "", 1)

	return &Persistence{
		root:      cleanRoot,
		graphRepo: NewGraphRepository(cleanRoot),
		formRepo:  NewLeadFormRepository(cleanRoot),
	}
}

// Close performs any necessary cleanup. Nothing to clean up for files.
func (fp *Persistence) Close(_ context.Context) error {
	return nil
}

// HealthCheck verifies the root directory exists.
func (fp *Persistence) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(fp.root); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

// GraphRepository returns the graph repository implementation.
func (fp *Persistence) GraphRepository() persistence.GraphRepository {
	return fp.graphRepo
}

// LeadFormRepository returns the lead-form repository implementation.
func (fp *Persistence) LeadFormRepository() persistence.LeadFormRepository {
	return fp.formRepo
}
