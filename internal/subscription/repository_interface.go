package subscription

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Activate reports false without writing anything when the gym is
	// already active.
	Activate(ctx context.Context, gymID int, planType string, amount decimal.Decimal, start, end time.Time) (*Subscription, bool, error)
	Current(ctx context.Context, gymID int) (*Subscription, error)
	Active(ctx context.Context, gymID int) (*Subscription, error)
	ChangePlan(ctx context.Context, gymID, subscriptionID int, planType string) (*Subscription, error)
	Cancel(ctx context.Context, gymID, subscriptionID int, at time.Time) (*Subscription, error)
	ListByGym(ctx context.Context, gymID int) ([]Subscription, error)
	GetPaymentMethod(ctx context.Context, gymID int) (*PaymentMethod, error)
	ReplacePaymentMethod(ctx context.Context, gymID int, pm NewPaymentMethod) (*PaymentMethod, error)
	Contact(ctx context.Context, gymID int) (*Contact, error)
}
