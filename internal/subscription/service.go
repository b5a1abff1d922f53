package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gymcore/internal/apperr"
	"gymcore/internal/logger"
	"gymcore/internal/metrics"
)

var (
	ErrUnknownPlan           = apperr.WithMessage(apperr.ErrValidation, "Unknown plan type")
	ErrNoSubscription        = apperr.WithMessage(apperr.ErrNotFound, "No subscription found")
	ErrNoActiveSubscription  = apperr.WithMessage(apperr.ErrNotFound, "No active subscription found")
	ErrSamePlan              = apperr.WithMessage(apperr.ErrInvalidState, "New plan must be different from current plan")
	ErrCardExpired           = apperr.WithMessage(apperr.ErrValidation, "Card expired")
	ErrPaymentMethodNotFound = apperr.WithMessage(apperr.ErrNotFound, "No payment method on file")
	ErrGymNotFound           = apperr.WithMessage(apperr.ErrNotFound, "Gym not found")
)

// Notifier records an in-app notification for a gym.
type Notifier interface {
	Notify(ctx context.Context, gymID int, title, message, kind string) error
}

// Mailer queues billing emails.
type Mailer interface {
	SendPaymentReceipt(ctx context.Context, to, name, gymName, planType, amount string, endDate time.Time) error
	SendPlanChanged(ctx context.Context, to, name, gymName, oldPlan, newPlan string) error
	SendCancellation(ctx context.Context, to, name, gymName string, endDate time.Time) error
}

type Service interface {
	Pay(ctx context.Context, gymID int, req PaymentRequest) (*PaymentResponse, error)
	Get(ctx context.Context, gymID int) (*SubscriptionResponse, error)
	ChangePlan(ctx context.Context, gymID int, newPlan string) (*Subscription, error)
	Cancel(ctx context.Context, gymID int) (*Subscription, error)
	Invoices(ctx context.Context, gymID int) ([]Invoice, error)
	GetPaymentMethod(ctx context.Context, gymID int) (*PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, gymID int, req PaymentMethodRequest) (*PaymentMethod, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	mailer   Mailer
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier, mailer Mailer) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		mailer:   mailer,
		now:      time.Now,
	}
}

func (s *service) Pay(ctx context.Context, gymID int, req PaymentRequest) (*PaymentResponse, error) {
	plan, ok := FindPlan(req.PlanType)
	if !ok {
		return nil, ErrUnknownPlan
	}

	start := s.now()
	sub, activated, err := s.repo.Activate(ctx, gymID, plan.Type, plan.Price, start, start.Add(Term))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	if !activated {
		logger.Info("payment skipped, gym already active", "gym_id", gymID)
		return &PaymentResponse{
			Success:   true,
			Message:   "Gym is already active",
			GymStatus: "active",
		}, nil
	}

	logger.Info("gym activated",
		"gym_id", gymID,
		"subscription_id", sub.ID,
		"plan_type", sub.PlanType,
		"amount", sub.Amount.StringFixed(2),
		"method", req.PaymentMethodMock,
	)
	metrics.RecordPayment(sub.PlanType)

	s.notify(ctx, gymID, "Payment successful",
		fmt.Sprintf("Your %s subscription is active until %s.", plan.Name, sub.EndDate.Format("Jan 2, 2006")), "success")
	s.mail(ctx, gymID, func(c *Contact) error {
		return s.mailer.SendPaymentReceipt(ctx, c.AdminEmail, c.AdminName, c.GymName, sub.PlanType, sub.Amount.StringFixed(2), sub.EndDate)
	})

	return &PaymentResponse{
		Success:        true,
		Message:        "Payment successful",
		SubscriptionID: &sub.ID,
		GymStatus:      "active",
	}, nil
}

func (s *service) Get(ctx context.Context, gymID int) (*SubscriptionResponse, error) {
	sub, err := s.repo.Current(ctx, gymID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSubscription
		}
		return nil, err
	}

	now := s.now()
	return &SubscriptionResponse{
		Subscription:  *sub,
		State:         StateOf(sub, now),
		DaysRemaining: DaysRemaining(sub, now),
	}, nil
}

func (s *service) active(ctx context.Context, gymID int) (*Subscription, error) {
	sub, err := s.repo.Active(ctx, gymID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveSubscription
		}
		return nil, err
	}
	return sub, nil
}

func (s *service) ChangePlan(ctx context.Context, gymID int, newPlan string) (*Subscription, error) {
	plan, ok := FindPlan(newPlan)
	if !ok {
		return nil, ErrUnknownPlan
	}

	current, err := s.active(ctx, gymID)
	if err != nil {
		return nil, err
	}
	if current.PlanType == plan.Type {
		return nil, ErrSamePlan
	}

	updated, err := s.repo.ChangePlan(ctx, gymID, current.ID, plan.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveSubscription
		}
		return nil, err
	}

	logger.Info("plan changed", "gym_id", gymID, "from", current.PlanType, "to", updated.PlanType)
	metrics.RecordSubscriptionChange("change_plan")

	s.notify(ctx, gymID, "Plan changed",
		fmt.Sprintf("Your plan changed from %s to %s.", current.PlanType, updated.PlanType), "info")
	s.mail(ctx, gymID, func(c *Contact) error {
		return s.mailer.SendPlanChanged(ctx, c.AdminEmail, c.AdminName, c.GymName, current.PlanType, updated.PlanType)
	})

	return updated, nil
}

// Cancel keeps the gym active; access lasts until the end of the paid period.
func (s *service) Cancel(ctx context.Context, gymID int) (*Subscription, error) {
	current, err := s.active(ctx, gymID)
	if err != nil {
		return nil, err
	}

	cancelled, err := s.repo.Cancel(ctx, gymID, current.ID, s.now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveSubscription
		}
		return nil, err
	}

	logger.Info("subscription cancelled", "gym_id", gymID, "subscription_id", cancelled.ID, "end_date", cancelled.EndDate)
	metrics.RecordSubscriptionChange("cancel")

	s.notify(ctx, gymID, "Subscription cancelled",
		fmt.Sprintf("Your gym stays active until %s.", cancelled.EndDate.Format("Jan 2, 2006")), "warning")
	s.mail(ctx, gymID, func(c *Contact) error {
		return s.mailer.SendCancellation(ctx, c.AdminEmail, c.AdminName, c.GymName, cancelled.EndDate)
	})

	return cancelled, nil
}

func (s *service) Invoices(ctx context.Context, gymID int) ([]Invoice, error) {
	subs, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	invoices := make([]Invoice, 0, len(subs))
	for _, sub := range subs {
		invoices = append(invoices, InvoiceFor(sub))
	}
	return invoices, nil
}

func (s *service) GetPaymentMethod(ctx context.Context, gymID int) (*PaymentMethod, error) {
	pm, err := s.repo.GetPaymentMethod(ctx, gymID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return pm, nil
}

func (s *service) UpdatePaymentMethod(ctx context.Context, gymID int, req PaymentMethodRequest) (*PaymentMethod, error) {
	in := NewPaymentMethod{
		LastFour:    req.CardNumber[len(req.CardNumber)-4:],
		CardType:    req.CardType,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
	}

	card := PaymentMethod{ExpiryMonth: in.ExpiryMonth, ExpiryYear: in.ExpiryYear}
	if card.Expired(s.now()) {
		return nil, ErrCardExpired
	}

	pm, err := s.repo.ReplacePaymentMethod(ctx, gymID, in)
	if err != nil {
		return nil, err
	}

	logger.Info("payment method updated", "gym_id", gymID, "card_type", pm.CardType, "last_four", pm.LastFour)
	return pm, nil
}

func (s *service) notify(ctx context.Context, gymID int, title, message, kind string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, gymID, title, message, kind); err != nil {
		logger.WithError(err).Warn("failed to create notification", "gym_id", gymID, "title", title)
	}
}

func (s *service) mail(ctx context.Context, gymID int, send func(*Contact) error) {
	if s.mailer == nil {
		return
	}
	contact, err := s.repo.Contact(ctx, gymID)
	if err != nil {
		logger.WithError(err).Warn("no billing contact", "gym_id", gymID)
		return
	}
	if err := send(contact); err != nil {
		logger.WithError(err).Warn("failed to queue billing email", "gym_id", gymID)
	}
}
