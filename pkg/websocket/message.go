package websocket

import "time"

// Message types sent to clients.
const (
	TypeNotification = "notification"
	TypeUnreadCount  = "unread_count"
)

// Envelope wraps every outgoing message so the client can dispatch on Type.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}
