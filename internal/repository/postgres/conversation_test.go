package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"weeklyreport/internal/domain"
)

func TestConversationRepo_Get(t *testing.T) {
	answers := domain.Answers{
		Range: domain.WeekRange{
			Start: time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		},
		Mood: 8,
	}
	rawAnswers, err := json.Marshal(answers)
	assert.NoError(t, err)

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewConversationRepo(db)

	updatedAt := time.Date(2024, 12, 11, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"step", "answers", "updated_at"}).
		AddRow("ask_body", rawAnswers, updatedAt)

	mock.ExpectQuery("SELECT step, answers, updated_at FROM conversations").
		WithArgs(int64(123)).
		WillReturnRows(rows)

	conv, err := repo.Get(123)

	assert.NoError(t, err)
	assert.NotNil(t, conv)
	assert.Equal(t, domain.StepAskBody, conv.Step)
	assert.Equal(t, float64(8), conv.Answers.Mood)
	assert.Equal(t, "2024-12-09", conv.Answers.Range.StartString())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepo_Get_Absent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewConversationRepo(db)

	mock.ExpectQuery("SELECT step, answers, updated_at FROM conversations").
		WithArgs(int64(456)).
		WillReturnRows(sqlmock.NewRows([]string{"step", "answers", "updated_at"}))

	conv, err := repo.Get(456)

	assert.NoError(t, err)
	assert.Nil(t, conv)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepo_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewConversationRepo(db)

	conv := &domain.Conversation{
		UserID: 123,
		Step:   domain.StepChooseWeek,
	}
	rawAnswers, err := json.Marshal(conv.Answers)
	assert.NoError(t, err)

	mock.ExpectExec("INSERT INTO conversations").
		WithArgs(int64(123), "choose_week", rawAnswers).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(conv)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepo_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewConversationRepo(db)

	mock.ExpectExec("DELETE FROM conversations").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(123)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
