package store

import (
	"context"
	"fmt"

	"warehouse-dashboard/internal/models"
)

// DefaultActivityLimit caps the rows returned by ListRecentActivity.
const DefaultActivityLimit = 50

// RecordActivity inserts a log row. Redelivered events are ignored, so the
// returned bool reports whether a new row was written.
func (s *Store) RecordActivity(ctx context.Context, entry *models.ActivityEntry) (bool, error) {
	query := `
		INSERT INTO activity_log (event_id, resource, mutation, resource_id, actor, summary, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (event_id) DO NOTHING`

	res, err := s.db.ExecContext(ctx, query,
		entry.EventID, entry.Resource, entry.Mutation, entry.ResourceID,
		entry.Actor, entry.Summary, entry.OccurredAt)
	if err != nil {
		return false, fmt.Errorf("failed to record activity: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// ListRecentActivity returns the newest entries first, optionally for one resource.
func (s *Store) ListRecentActivity(ctx context.Context, resource string, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 || limit > DefaultActivityLimit {
		limit = DefaultActivityLimit
	}

	entries := []models.ActivityEntry{}
	var err error
	if resource == "" {
		err = s.db.SelectContext(ctx, &entries,
			"SELECT * FROM activity_log ORDER BY occurred_at DESC, id DESC LIMIT $1", limit)
	} else {
		err = s.db.SelectContext(ctx, &entries,
			"SELECT * FROM activity_log WHERE resource = $1 ORDER BY occurred_at DESC, id DESC LIMIT $2", resource, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}
