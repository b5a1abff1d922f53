package member

import "time"

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// Members created without a plan get the legacy monthly term.
const defaultTermDays = 30

type Member struct {
	ID               int       `db:"id" json:"id"`
	GymID            int       `db:"gym_id" json:"gym_id"`
	PlanID           *int      `db:"plan_id" json:"plan_id"`
	FullName         string    `db:"full_name" json:"full_name"`
	Email            *string   `db:"email" json:"email"`
	Phone            *string   `db:"phone" json:"phone"`
	DNI              string    `db:"dni" json:"dni"`
	MembershipType   *string   `db:"membership_type" json:"membership_type"`
	MembershipStatus string    `db:"membership_status" json:"membership_status" example:"active"`
	StartDate        time.Time `db:"start_date" json:"start_date"`
	EndDate          time.Time `db:"end_date" json:"end_date"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type CreateMemberRequest struct {
	FullName       string     `json:"full_name" binding:"required,min=2,max=255"`
	Email          *string    `json:"email" binding:"omitempty,email"`
	Phone          *string    `json:"phone" binding:"omitempty,max=50"`
	DNI            string     `json:"dni" binding:"required,max=50"`
	MembershipType *string    `json:"membership_type" binding:"omitempty,max=50"`
	PlanID         *int       `json:"plan_id" binding:"omitempty,gt=0"`
	StartDate      *time.Time `json:"start_date"`
}

type UpdateMemberRequest struct {
	FullName         *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone" binding:"omitempty,max=50"`
	DNI              *string `json:"dni" binding:"omitempty,max=50"`
	MembershipType   *string `json:"membership_type" binding:"omitempty,max=50"`
	PlanID           *int    `json:"plan_id" binding:"omitempty,gt=0"`
	MembershipStatus *string `json:"membership_status" binding:"omitempty,oneof=active inactive suspended"`
}

type ListFilter struct {
	Skip   int
	Limit  int
	Status string
	Search string
}
