package domain

import "time"

// Subscriber is a user who started the bot; inactive subscribers are
// skipped by the weekly reminder broadcast
type Subscriber struct {
	UserID    int64
	Username  string
	FirstName string
	Active    bool
	CreatedAt time.Time
}
