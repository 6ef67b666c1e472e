package models

import "time"

// ActivityEntry is one row of the activity log.
type ActivityEntry struct {
	ID         int64     `db:"id" json:"id"`
	EventID    string    `db:"event_id" json:"event_id"`
	Resource   string    `db:"resource" json:"resource"`
	Mutation   string    `db:"mutation" json:"mutation"`
	ResourceID string    `db:"resource_id" json:"resource_id"`
	Actor      string    `db:"actor" json:"actor"`
	Summary    string    `db:"summary" json:"summary"`
	OccurredAt time.Time `db:"occurred_at" json:"occurred_at"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// ActivityEntryFromEvent maps a mutation event onto a log row.
func ActivityEntryFromEvent(e ResourceMutatedEvent) ActivityEntry {
	return ActivityEntry{
		EventID:    e.EventID,
		Resource:   e.Resource,
		Mutation:   e.Mutation,
		ResourceID: e.ResourceID,
		Actor:      e.Actor,
		Summary:    e.Summary,
		OccurredAt: e.Timestamp,
	}
}
