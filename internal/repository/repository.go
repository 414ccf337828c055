package repository

import "weeklyreport/internal/domain"

// ConversationRepository defines durable wizard-state operations.
// Get returns nil when the user has no active conversation.
type ConversationRepository interface {
	Get(userID int64) (*domain.Conversation, error)
	Upsert(conv *domain.Conversation) error
	Delete(userID int64) error
}

// SubscriberRepository defines reminder-subscription operations
type SubscriberRepository interface {
	Ensure(userID int64, username, firstName string) error
	SetActive(userID int64, active bool) error
	ListActive() ([]int64, error)
}
