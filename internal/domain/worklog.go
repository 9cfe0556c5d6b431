package domain

import "time"

// WorkLog is a pure journal entry; it has no lifecycle.
type WorkLog struct {
	ID                int32     `json:"id"`
	UserID            int32     `json:"user_id"`
	LogDate           time.Time `json:"log_date"`
	Notes             string    `json:"notes"`
	TargetDescription string    `json:"target_description,omitempty"`
	CreatedOn         time.Time `json:"created_on"`
}
