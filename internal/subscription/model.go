package subscription

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// State is the billing state of a gym derived from its latest subscription.
type State string

const (
	StateUnpaid                 State = "unpaid"
	StateActive                 State = "active"
	StateCancelledPendingExpiry State = "cancelled_pending_expiry"
	StateExpired                State = "expired"
)

type Subscription struct {
	ID          int             `db:"id" json:"id"`
	GymID       int             `db:"gym_id" json:"gym_id"`
	PlanType    string          `db:"plan_type" json:"plan_type"`
	Amount      decimal.Decimal `db:"amount" json:"amount" swaggertype:"string" example:"269.00"`
	Status      Status          `db:"status" json:"status"`
	StartDate   time.Time       `db:"start_date" json:"start_date"`
	EndDate     time.Time       `db:"end_date" json:"end_date"`
	CancelledAt *time.Time      `db:"cancelled_at" json:"cancelled_at"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

type PaymentMethod struct {
	ID          int       `db:"id" json:"id"`
	GymID       int       `db:"gym_id" json:"gym_id"`
	LastFour    string    `db:"last_four" json:"last_four" example:"4242"`
	CardType    string    `db:"card_type" json:"card_type" example:"visa"`
	ExpiryMonth int       `db:"expiry_month" json:"expiry_month" example:"12"`
	ExpiryYear  int       `db:"expiry_year" json:"expiry_year" example:"2030"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

func (pm PaymentMethod) Expired(now time.Time) bool {
	if pm.ExpiryYear != now.Year() {
		return pm.ExpiryYear < now.Year()
	}
	return pm.ExpiryMonth < int(now.Month())
}

// Contact is who billing mail goes to.
type Contact struct {
	GymName    string `db:"gym_name"`
	AdminEmail string `db:"admin_email"`
	AdminName  string `db:"admin_name"`
}

type Invoice struct {
	Number         string          `json:"number" example:"INV-2026-000123"`
	SubscriptionID int             `json:"subscription_id"`
	PlanType       string          `json:"plan_type"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string" example:"269.00"`
	Status         string          `json:"status" example:"paid"`
	IssuedAt       time.Time       `json:"issued_at"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
}

func InvoiceFor(sub Subscription) Invoice {
	return Invoice{
		Number:         fmt.Sprintf("INV-%d-%06d", sub.CreatedAt.Year(), sub.ID),
		SubscriptionID: sub.ID,
		PlanType:       sub.PlanType,
		Amount:         sub.Amount,
		Status:         "paid",
		IssuedAt:       sub.CreatedAt,
		PeriodStart:    sub.StartDate,
		PeriodEnd:      sub.EndDate,
	}
}

type PaymentRequest struct {
	PlanType          string `json:"plan_type" binding:"required,oneof=basic pro elite"`
	PaymentMethodMock string `json:"payment_method_mock" binding:"required" example:"card"`
}

type PaymentResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	SubscriptionID *int   `json:"subscription_id,omitempty"`
	GymStatus      string `json:"gym_status" example:"active"`
}

type ChangePlanRequest struct {
	NewPlanType string `json:"new_plan_type" binding:"required,oneof=basic pro elite"`
}

type SubscriptionResponse struct {
	Subscription
	State         State `json:"state"`
	DaysRemaining int   `json:"days_remaining"`
}

type PaymentMethodRequest struct {
	CardNumber  string `json:"card_number" binding:"required,numeric,min=12,max=19"`
	CardType    string `json:"card_type" binding:"required,oneof=visa mastercard amex"`
	ExpiryMonth int    `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" binding:"required,min=2000,max=2100"`
}

type NewPaymentMethod struct {
	LastFour    string
	CardType    string
	ExpiryMonth int
	ExpiryYear  int
}
