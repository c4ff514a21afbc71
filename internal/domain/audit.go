package domain

import "time"

// AuditRecord is one append-only activity log entry. Records are write-once:
// nothing in the system updates or deletes them (retention cleanup aside).
type AuditRecord struct {
	ID           string    `json:"id"`
	ActorID      int64     `json:"actor_id"`
	Action       string    `json:"action"`
	Entity       string    `json:"entity"`
	EntityID     int64     `json:"entity_id"`
	BeforeStatus string    `json:"before_status,omitempty"`
	AfterStatus  string    `json:"after_status,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
