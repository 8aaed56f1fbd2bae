package ports

import "context"

// Notification is one outbound message handed to the dispatcher. Recipient
// drives worker sharding so that messages to the same address are
// delivered in order.
type Notification struct {
	Recipient string
	Subject   string
	Body      string
}

// NotificationService delivers (or records) outbound notifications.
type NotificationService interface {
	Deliver(ctx context.Context, n Notification) error
}

// NotificationQueue accepts notifications for asynchronous delivery.
type NotificationQueue interface {
	Enqueue(n Notification)
}
