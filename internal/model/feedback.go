package model

import "time"

// FeedbackEntry is one stored feedback record. ID and CreatedAt are assigned
// by the storage layer at insert; entries are never updated or deleted
// through the API.
type FeedbackEntry struct {
	ID        int64
	Message   string
	Rating    int
	CreatedAt time.Time
}
