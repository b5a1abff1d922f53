package notification

import "time"

const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
)

const (
	unreadLimit = 10
	readLimit   = 5
)

type Notification struct {
	ID        int       `db:"id" json:"id"`
	GymID     int       `db:"gym_id" json:"-"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	Type      string    `db:"type" json:"type" example:"info"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
