package models

const (
	QueryStatusPending  = "pending"
	QueryStatusResolved = "Resolved"
)

// TimestampLayout is the layout used by every CSV log the site writes.
const TimestampLayout = "2006-01-02 15:04:05"

// UnresolvedQuery is a chat message no rule answered, kept for human triage.
type UnresolvedQuery struct {
	Timestamp string `json:"timestamp"`
	Query     string `json:"query"`
	Status    string `json:"status"`
}
