// Package redis provides Redis-backed persistence for graphs and lead
// forms. Each document is one JSON blob under a namespaced key; listing
// scans the namespace and filters in memory, which fits the editor's
// per-workspace scale.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/launchpadhq/launchpad/pkg/persistence"
)

const (
	graphKeyPrefix = "launchpad:graph:"
	formKeyPrefix  = "launchpad:form:"
)

// Persistence implements the persistence.Persistence interface on Redis.
type Persistence struct {
	client    redis.UniversalClient
	graphRepo *GraphRepository
	formRepo  *LeadFormRepository
}

// NewPersistence connects to Redis using a redis:// URL.
func NewPersistence(ctx context.Context, redisURL string) (*Persistence, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(options)

	err = client.Ping(ctx).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Persistence{
		client:    client,
		graphRepo: NewGraphRepository(client),
		formRepo:  NewLeadFormRepository(client),
	}, nil
}

// Close closes the Redis connection.
func (p *Persistence) Close(_ context.Context) error {
	err := p.client.Close()
	if err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}

// HealthCheck verifies the Redis connection is healthy.
func (p *Persistence) HealthCheck(ctx context.Context) error {
	err := p.client.Ping(ctx).Err()
	if err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
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

// scanKeys collects every key under a prefix using cursor-based SCAN.
func scanKeys(ctx context.Context, client redis.UniversalClient, prefix string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)

	for {
		batch, next, err := client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}

		keys = append(keys, batch...)

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}
