package postgres

import (
	"database/sql"
)

// SubscriberRepo implements repository.SubscriberRepository
type SubscriberRepo struct {
	db *sql.DB
}

// NewSubscriberRepo creates a new subscriber repository
func NewSubscriberRepo(db *sql.DB) *SubscriberRepo {
	return &SubscriberRepo{db: db}
}

// Ensure creates the subscriber or refreshes the profile fields,
// reactivating users who come back after /stop
func (r *SubscriberRepo) Ensure(userID int64, username, firstName string) error {
	query := `
		INSERT INTO subscribers (telegram_id, username, first_name, active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (telegram_id)
		DO UPDATE SET username = EXCLUDED.username, first_name = EXCLUDED.first_name, active = TRUE, updated_at = now()
	`
	_, err := r.db.Exec(query, userID, username, firstName)
	return err
}

// SetActive toggles the weekly reminder for the user
func (r *SubscriberRepo) SetActive(userID int64, active bool) error {
	query := `UPDATE subscribers SET active = $2, updated_at = now() WHERE telegram_id = $1`
	_, err := r.db.Exec(query, userID, active)
	return err
}

// ListActive returns ids of subscribers with reminders enabled
func (r *SubscriberRepo) ListActive() ([]int64, error) {
	query := `SELECT telegram_id FROM subscribers WHERE active = TRUE ORDER BY telegram_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
