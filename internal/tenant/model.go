package tenant

import (
	"time"

	"gymcore/internal/auth"
)

// Principal is the authenticated caller as currently stored, not as the
// token remembers it.
type Principal struct {
	UserID   int       `json:"user_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	GymID    *int      `json:"gym_id"`
	Role     auth.Role `json:"role"`
}

func (p *Principal) Can(perm auth.Permission) bool {
	return p.Role.Can(perm)
}

type UserRecord struct {
	ID       int       `db:"id"`
	Email    string    `db:"email"`
	FullName string    `db:"full_name"`
	GymID    *int      `db:"gym_id"`
	Role     auth.Role `db:"role"`
	IsActive bool      `db:"is_active"`
}

// GymStatus is the tenant flag plus its latest non-expired subscription.
type GymStatus struct {
	GymID          int        `db:"gym_id"`
	IsActive       bool       `db:"is_active"`
	SubscriptionID *int       `db:"subscription_id"`
	Status         *string    `db:"subscription_status"`
	EndDate        *time.Time `db:"end_date"`
}
