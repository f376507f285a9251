// Package postgresql provides PostgreSQL persistence for graphs and
// lead forms. Documents are stored as jsonb alongside the columns the
// listing queries need, so filtering and sorting happen in SQL.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	// Registers the postgres driver.
	_ "github.com/lib/pq"

	"github.com/launchpadhq/launchpad/pkg/persistence"
	"github.com/launchpadhq/launchpad/pkg/persistence/sqlbase"
)

// Persistence implements the persistence layer for PostgreSQL.
type Persistence struct {
	db        *sql.DB
	logger    *slog.Logger
	graphRepo *GraphRepository
	formRepo  *LeadFormRepository
}

// NewPersistence connects to PostgreSQL and runs pending migrations.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) (*Persistence, error) {
	database, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	err = database.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	migrationManager := sqlbase.NewMigrationManager(logger, database, migrations())

	err = migrationManager.RunMigrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Persistence{
		db:        database,
		logger:    logger,
		graphRepo: NewGraphRepository(database),
		formRepo:  NewLeadFormRepository(database),
	}, nil
}

// Close closes the database connection.
func (p *Persistence) Close(_ context.Context) error {
	if p.db != nil {
		err := p.db.Close()
		if err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}

// HealthCheck verifies the database connection is healthy.
func (p *Persistence) HealthCheck(ctx context.Context) error {
	err := p.db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// GraphRepository returns the graph repository implementation.
func (p *Persistence) GraphRepository() persistence.GraphRepository {
	return p.graphRepo
}

// LeadFormRepository returns the lead-form repository implementation.
func (p *Persistence) LeadFormRepository() persistence.LeadFormRepository {
	return p.formRepo
}

// migrations returns the schema migrations keyed by version.
func migrations() map[int]string {
	return map[int]string{
		1: `
			CREATE TABLE IF NOT EXISTS graphs (
				id TEXT PRIMARY KEY,
				workspace_id TEXT NOT NULL DEFAULT '',
				name TEXT NOT NULL,
				doc JSONB NOT NULL,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_graphs_workspace ON graphs (workspace_id);
		`,
		2: `
			CREATE TABLE IF NOT EXISTS lead_forms (
				id TEXT PRIMARY KEY,
				workspace_id TEXT NOT NULL DEFAULT '',
				name TEXT NOT NULL,
				doc JSONB NOT NULL,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_lead_forms_workspace ON lead_forms (workspace_id);
		`,
	}
}
