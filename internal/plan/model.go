package plan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is a membership offer a gym sells to its own members. It is unrelated
// to the platform subscription catalog.
type Plan struct {
	ID           int             `db:"id" json:"id"`
	GymID        int             `db:"gym_id" json:"gym_id"`
	Name         string          `db:"name" json:"name"`
	Description  *string         `db:"description" json:"description"`
	Price        decimal.Decimal `db:"price" json:"price" swaggertype:"string" example:"35.00"`
	DurationDays int             `db:"duration_days" json:"duration_days"`
	Benefits     *string         `db:"benefits" json:"benefits"`
	IsActive     bool            `db:"is_active" json:"is_active"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

type CreatePlanRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price" swaggertype:"number" example:"35"`
	DurationDays int             `json:"duration_days" binding:"required,gt=0"`
	Benefits     *string         `json:"benefits"`
}

type UpdatePlanRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price" swaggertype:"number"`
	DurationDays *int             `json:"duration_days" binding:"omitempty,gt=0"`
	Benefits     *string          `json:"benefits"`
	IsActive     *bool            `json:"is_active"`
}
