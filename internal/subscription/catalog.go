package subscription

import (
	"time"

	"github.com/shopspring/decimal"
)

// Term is the fixed billing period of every plan.
const Term = 30 * 24 * time.Hour

type Plan struct {
	Type     string          `json:"type" example:"pro"`
	Name     string          `json:"name" example:"Pro"`
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"269.00"`
	Features []string        `json:"features"`
}

var catalog = []Plan{
	{
		Type:     "basic",
		Name:     "Basic",
		Price:    decimal.RequireFromString("129.00"),
		Features: []string{"Up to 100 members", "Attendance check-in", "1 staff account"},
	},
	{
		Type:     "pro",
		Name:     "Pro",
		Price:    decimal.RequireFromString("269.00"),
		Features: []string{"Up to 500 members", "Membership plans", "Dashboard reports", "5 staff accounts"},
	},
	{
		Type:     "elite",
		Name:     "Elite",
		Price:    decimal.RequireFromString("449.00"),
		Features: []string{"Unlimited members", "Everything in Pro", "Unlimited staff accounts"},
	},
}

func Plans() []Plan {
	plans := make([]Plan, len(catalog))
	copy(plans, catalog)
	return plans
}

func FindPlan(planType string) (Plan, bool) {
	for _, p := range catalog {
		if p.Type == planType {
			return p, true
		}
	}
	return Plan{}, false
}
