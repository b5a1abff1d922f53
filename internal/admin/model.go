package admin

import (
	"time"

	"gymcore/internal/gym"

	"github.com/shopspring/decimal"
)

const (
	StatusFilterActive   = "active"
	StatusFilterInactive = "inactive"
)

type PlatformStats struct {
	TotalGyms        int             `db:"total_gyms" json:"total_gyms"`
	ActiveGyms       int             `db:"active_gyms" json:"active_gyms"`
	InactiveGyms     int             `db:"-" json:"inactive_gyms"`
	TotalMembers     int             `db:"total_members" json:"total_members"`
	ActiveMembers    int             `db:"active_members" json:"active_members"`
	NewGymsThisMonth int             `db:"new_gyms_this_month" json:"new_gyms_this_month"`
	TotalRevenue     decimal.Decimal `db:"total_revenue" json:"total_revenue" swaggertype:"string" example:"5120.00"`
}

type SubscriptionSummary struct {
	Status    string          `json:"status"`
	PlanType  string          `json:"plan_type"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	EndDate   *time.Time      `json:"end_date"`
}

// SubscriptionColumns are the joined subscription columns of a gym row. All
// of them are NULL when the gym never paid.
type SubscriptionColumns struct {
	SubStatus   *string             `db:"sub_status"`
	SubPlanType *string             `db:"sub_plan_type"`
	SubAmount   decimal.NullDecimal `db:"sub_amount"`
	SubStart    *time.Time          `db:"sub_start_date"`
	SubEnd      *time.Time          `db:"sub_end_date"`
}

func (c SubscriptionColumns) summary() *SubscriptionSummary {
	if c.SubStatus == nil {
		return nil
	}
	s := &SubscriptionSummary{
		Status:    *c.SubStatus,
		StartDate: c.SubStart,
		EndDate:   c.SubEnd,
	}
	if c.SubPlanType != nil {
		s.PlanType = *c.SubPlanType
	}
	if c.SubAmount.Valid {
		s.Amount = c.SubAmount.Decimal
	}
	return s
}

type GymSummary struct {
	gym.Gym
	MemberCount         int `db:"member_count" json:"member_count"`
	ActiveMemberCount   int `db:"active_member_count" json:"active_member_count"`
	SubscriptionColumns `json:"-"`
	Subscription        *SubscriptionSummary `db:"-" json:"subscription"`
}

type UserSummary struct {
	ID       int    `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	FullName string `db:"full_name" json:"full_name"`
	Role     string `db:"role" json:"role"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

type GymStats struct {
	TotalMembers  int `json:"total_members"`
	ActiveMembers int `json:"active_members"`
	UserCount     int `json:"user_count"`
}

type GymDetail struct {
	gym.Gym
	Stats        GymStats             `json:"stats"`
	Users        []UserSummary        `json:"users"`
	Subscription *SubscriptionSummary `json:"subscription"`
}

type GymFilter struct {
	Skip   int
	Limit  int
	Status string
	Search string
}

type ToggleResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	Message  string `json:"message" example:"Gym activated"`
}
