package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"weeklyreport/internal/domain"
)

// ConversationRepo implements repository.ConversationRepository
type ConversationRepo struct {
	db *sql.DB
}

// NewConversationRepo creates a new conversation repository
func NewConversationRepo(db *sql.DB) *ConversationRepo {
	return &ConversationRepo{db: db}
}

// Get loads the user's active conversation, nil if there is none
func (r *ConversationRepo) Get(userID int64) (*domain.Conversation, error) {
	query := `SELECT step, answers, updated_at FROM conversations WHERE telegram_id = $1`

	var step string
	var rawAnswers []byte
	conv := &domain.Conversation{UserID: userID}

	err := r.db.QueryRow(query, userID).Scan(&step, &rawAnswers, &conv.UpdatedAt)
	if err == sql.ErrNoRows {
		// No active conversation
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rawAnswers, &conv.Answers); err != nil {
		return nil, fmt.Errorf("failed to decode answers for user %d: %w", userID, err)
	}
	conv.Step = domain.Step(step)

	return conv, nil
}

// Upsert inserts the conversation or overwrites step, answers and timestamp
func (r *ConversationRepo) Upsert(conv *domain.Conversation) error {
	rawAnswers, err := json.Marshal(conv.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers for user %d: %w", conv.UserID, err)
	}

	query := `
		INSERT INTO conversations (telegram_id, step, answers, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (telegram_id)
		DO UPDATE SET step = EXCLUDED.step, answers = EXCLUDED.answers, updated_at = now()
	`
	_, err = r.db.Exec(query, conv.UserID, string(conv.Step), rawAnswers)
	return err
}

// Delete removes the user's conversation, no-op if absent
func (r *ConversationRepo) Delete(userID int64) error {
	query := `DELETE FROM conversations WHERE telegram_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
