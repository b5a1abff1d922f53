package dashboard

import "github.com/shopspring/decimal"

const (
	recentLimit = 10
	chartMonths = 6
)

// MemberCounts is one row of per-status member totals.
type MemberCounts struct {
	Total        int `db:"total"`
	Active       int `db:"active"`
	Inactive     int `db:"inactive"`
	Suspended    int `db:"suspended"`
	NewThisMonth int `db:"new_this_month"`
}

type Slice struct {
	Label string `db:"label"`
	Count int    `db:"count"`
}

type MonthRevenue struct {
	Period  string          `db:"period"`
	Revenue decimal.Decimal `db:"revenue"`
}

type Stats struct {
	TotalMembers           int             `json:"total_members"`
	ActiveMembers          int             `json:"active_members"`
	InactiveMembers        int             `json:"inactive_members"`
	SuspendedMembers       int             `json:"suspended_members"`
	NewMembersThisMonth    int             `json:"new_members_this_month"`
	RevenueThisMonth       decimal.Decimal `json:"revenue_this_month" swaggertype:"string" example:"1250.00"`
	MembershipDistribution map[string]int  `json:"membership_distribution"`
}

type RevenuePoint struct {
	Month   string          `json:"month" example:"Mar"`
	Period  string          `json:"period" example:"2026-03"`
	Revenue decimal.Decimal `json:"revenue" swaggertype:"string" example:"840.00"`
}
