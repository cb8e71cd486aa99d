package models

// ActivityEntry is a write-only audit record. Failing to persist one must
// never fail the operation that produced it.
type ActivityEntry struct {
	Timestamp  int64  `db:"timestamp" json:"timestamp"`
	Action     string `db:"action" json:"action"`
	EntityType string `db:"entity_type" json:"entity_type"`
	EntityID   int64  `db:"entity_id" json:"entity_id"`
	EntityName string `db:"entity_name" json:"entity_name"`
	Details    string `db:"details" json:"details"`
}
