package attendance

import "time"

const (
	defaultRangeDays    = 7
	defaultHistoryLimit = 10
)

type Attendance struct {
	ID          int       `db:"id" json:"id"`
	GymID       int       `db:"gym_id" json:"gym_id"`
	MemberID    int       `db:"member_id" json:"member_id"`
	CheckInTime time.Time `db:"check_in_time" json:"check_in_time"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Record is a check-in joined with the member it belongs to.
type Record struct {
	ID          int       `db:"id" json:"id"`
	MemberID    int       `db:"member_id" json:"member_id"`
	MemberName  string    `db:"member_name" json:"member_name"`
	MemberDNI   string    `db:"member_dni" json:"member_dni"`
	CheckInTime time.Time `db:"check_in_time" json:"check_in_time"`
}

// MemberCard is the part of a member the front desk needs to admit them.
type MemberCard struct {
	ID               int       `db:"id"`
	FullName         string    `db:"full_name"`
	DNI              string    `db:"dni"`
	MembershipStatus string    `db:"membership_status"`
	EndDate          time.Time `db:"end_date"`
}

type CheckInRequest struct {
	DNI string `json:"dni" binding:"required,max=50" example:"30111222"`
}

type Stats struct {
	TodayCount int `db:"today_count" json:"today_count"`
	WeekCount  int `db:"week_count" json:"week_count"`
	MonthCount int `db:"month_count" json:"month_count"`
}
