package domain

import "time"

type Notification struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"user_id"`
	Message   string    `json:"message"`
	LinkURL   string    `json:"link_url,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedOn time.Time `json:"created_on"`
}
