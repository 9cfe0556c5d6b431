package domain

import "time"

// Message is a point-to-point chat message. Immutable once created.
type Message struct {
	ID            int32     `json:"id"`
	SenderID      int32     `json:"sender_id"`
	ReceiverID    int32     `json:"receiver_id"`
	Content       string    `json:"content"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	CreatedOn     time.Time `json:"created_on"`
}
