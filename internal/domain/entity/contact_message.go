package entity

import "time"

// MessageStatus tracks whether a contact message has been handled.
type MessageStatus string

const (
	MessageUnread  MessageStatus = "unread"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
)

var MessageStatuses = []MessageStatus{MessageUnread, MessageRead, MessageReplied}

// ContactMessage is a message sent through the public contact form.
type ContactMessage struct {
	ID        int64         `bson:"_id" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Phone     *string       `bson:"phone,omitempty" json:"phone"`
	Subject   string        `bson:"subject" json:"subject"`
	Message   string        `bson:"message" json:"message"`
	Status    MessageStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
}
