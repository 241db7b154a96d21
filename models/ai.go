package models

// AIMessage is one turn of an assistant conversation.
type AIMessage struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

// AIContext is the rolling conversation state stored per user in Redis.
type AIContext struct {
	Messages []AIMessage `json:"messages"`
}

// ReminderPayload is the queued task body for a booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	FireDate  string `json:"fireDate"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}
