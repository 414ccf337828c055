package testutil

import (
	"go.uber.org/zap"

	"weeklyreport/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// MemoryConversationRepo is an in-memory ConversationRepository for
// engine tests
type MemoryConversationRepo struct {
	rows map[int64]domain.Conversation
}

// NewMemoryConversationRepo creates an empty in-memory store
func NewMemoryConversationRepo() *MemoryConversationRepo {
	return &MemoryConversationRepo{rows: make(map[int64]domain.Conversation)}
}

func (r *MemoryConversationRepo) Get(userID int64) (*domain.Conversation, error) {
	row, ok := r.rows[userID]
	if !ok {
		return nil, nil
	}
	copied := row
	return &copied, nil
}

func (r *MemoryConversationRepo) Upsert(conv *domain.Conversation) error {
	r.rows[conv.UserID] = *conv
	return nil
}

func (r *MemoryConversationRepo) Delete(userID int64) error {
	delete(r.rows, userID)
	return nil
}

// Has reports whether the user currently has a stored conversation
func (r *MemoryConversationRepo) Has(userID int64) bool {
	_, ok := r.rows[userID]
	return ok
}
