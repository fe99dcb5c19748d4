package domain

import "time"

const (
	MessageUnread = "unread"
	MessageRead   = "read"
)

// Message is a direct message from an investor to a startup. Read/unread
// is the only mutable attribute; there is no edit operation.
type Message struct {
	ID         string    `json:"_id"`
	Investor   Ref       `json:"investorId"`
	Startup    Ref       `json:"startupId"`
	SenderRole string    `json:"senderRole"`
	Subject    string    `json:"subject"`
	Body       string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}
