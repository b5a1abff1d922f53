package tenant

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymcore/internal/apperr"
	"gymcore/internal/auth"
	"gymcore/internal/logger"
	"gymcore/internal/metrics"
)

// Gate answers two separate questions: who is calling, and whether the
// caller's gym is paid up. Billing endpoints only ask the first one.
type Gate struct {
	store Store
	now   func() time.Time
}

func NewGate(store Store) *Gate {
	return &Gate{store: store, now: time.Now}
}

// Resolve maps token claims to the stored principal by user id, so a profile
// email change keeps the session. The is_active claim is ignored.
func (g *Gate) Resolve(ctx context.Context, claims *auth.JWTClaims) (*Principal, error) {
	if claims == nil || claims.UserID <= 0 {
		return nil, apperr.ErrUnauthenticated
	}

	u, err := g.store.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrUnauthenticated
		}
		return nil, apperr.Wrap(err, apperr.ErrInternal, "")
	}

	if !u.IsActive {
		return nil, apperr.ErrUnauthenticated
	}

	return &Principal{
		UserID:   u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		GymID:    u.GymID,
		Role:     u.Role,
	}, nil
}

// VerifyActiveGym denies access when the gym flag is off or when the latest
// active or cancelled subscription has run past its end date. In the latter
// case the subscription is expired and the gym deactivated on the spot.
func (g *Gate) VerifyActiveGym(ctx context.Context, p *Principal) error {
	if p == nil || p.GymID == nil {
		return apperr.WithMessage(apperr.ErrForbidden, "Operation requires a gym account")
	}

	st, err := g.store.GymStatus(ctx, *p.GymID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrTenantInactive
		}
		return apperr.Wrap(err, apperr.ErrInternal, "")
	}

	if !st.IsActive {
		return apperr.ErrTenantInactive
	}

	if st.SubscriptionID != nil && st.EndDate != nil && st.EndDate.Before(g.now()) {
		if err := g.store.ExpireSubscription(ctx, st.GymID, *st.SubscriptionID); err != nil {
			logger.WithError(err).Error("failed to expire subscription",
				"gym_id", st.GymID,
				"subscription_id", *st.SubscriptionID,
			)
		} else {
			logger.Info("subscription expired", "gym_id", st.GymID, "subscription_id", *st.SubscriptionID)
			metrics.RecordSubscriptionChange("expire")
		}
		return apperr.WithMessage(apperr.ErrTenantInactive, "Gym subscription has expired. Please renew to continue.")
	}

	return nil
}
