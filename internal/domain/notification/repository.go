package notification

import "context"

// Repository - interface for the notifications table
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

// Publisher pushes email messages onto the mail queue.
type Publisher interface {
	PublishEmail(ctx context.Context, msg EmailMessage) error
}
