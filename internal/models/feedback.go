package models

import "time"

const (
	FeedbackContentMin = 5
	FeedbackContentMax = 500
)

// Feedback is a row of the feedbacks table. UpdatedAt stays NULL until the
// first update.
type Feedback struct {
	ID        int64      `db:"id" json:"id"`
	UserID    int64      `db:"user_id" json:"user_id"`
	Content   string     `db:"content" json:"content"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}
