package testutil

import (
	"github.com/stretchr/testify/mock"

	"weeklyreport/internal/domain"
)

// MockConversationRepository is a mock for repository.ConversationRepository
type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) Get(userID int64) (*domain.Conversation, error) {
	args := m.Called(userID)
	conv, _ := args.Get(0).(*domain.Conversation)
	return conv, args.Error(1)
}

func (m *MockConversationRepository) Upsert(conv *domain.Conversation) error {
	args := m.Called(conv)
	return args.Error(0)
}

func (m *MockConversationRepository) Delete(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockSubscriberRepository is a mock for repository.SubscriberRepository
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Ensure(userID int64, username, firstName string) error {
	args := m.Called(userID, username, firstName)
	return args.Error(0)
}

func (m *MockSubscriberRepository) SetActive(userID int64, active bool) error {
	args := m.Called(userID, active)
	return args.Error(0)
}

func (m *MockSubscriberRepository) ListActive() ([]int64, error) {
	args := m.Called()
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}
