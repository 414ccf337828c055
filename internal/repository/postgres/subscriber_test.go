package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSubscriberRepo_Ensure(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSubscriberRepo(db)

	mock.ExpectExec("INSERT INTO subscribers").
		WithArgs(int64(123), "runner", "Ivan").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Ensure(123, "runner", "Ivan")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriberRepo_Ensure_ReactivatesExistingUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSubscriberRepo(db)

	// A user who ran /stop must come back active when they /start again,
	// so the conflict branch has to reset the flag as well
	mock.ExpectExec(`INSERT INTO subscribers.*DO UPDATE SET.*active = TRUE`).
		WithArgs(int64(123), "runner", "Ivan").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Ensure(123, "runner", "Ivan")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriberRepo_SetActive(t *testing.T) {
	tests := []struct {
		name   string
		active bool
	}{
		{name: "deactivate", active: false},
		{name: "reactivate", active: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSubscriberRepo(db)

			mock.ExpectExec("UPDATE subscribers SET active").
				WithArgs(int64(123), tt.active).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err = repo.SetActive(123, tt.active)

			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSubscriberRepo_ListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSubscriberRepo(db)

	rows := sqlmock.NewRows([]string{"telegram_id"}).
		AddRow(int64(1)).
		AddRow(int64(3))

	mock.ExpectQuery("SELECT telegram_id FROM subscribers WHERE active").
		WillReturnRows(rows)

	ids, err := repo.ListActive()

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
