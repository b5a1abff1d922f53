package server

import (
	"gymcore/internal/admin"
	"gymcore/internal/attendance"
	"gymcore/internal/auth"
	"gymcore/internal/dashboard"
	"gymcore/internal/gym"
	"gymcore/internal/member"
	"gymcore/internal/notification"
	"gymcore/internal/plan"
	"gymcore/internal/subscription"
	"gymcore/internal/user"

	"github.com/gin-gonic/gin"
)

type handlers struct {
	user         *user.Handler
	gym          *gym.Handler
	subscription *subscription.Handler
	plan         *plan.Handler
	member       *member.Handler
	attendance   *attendance.Handler
	notification *notification.Handler
	dashboard    *dashboard.Handler
	admin        *admin.Handler
}

type routeGuards struct {
	authn     gin.HandlerFunc
	principal gin.HandlerFunc
	activeGym gin.HandlerFunc
	rateLimit gin.HandlerFunc
}

// signedIn is the chain for routes that work while the gym is unpaid.
func (g routeGuards) signedIn(perms ...auth.Permission) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{g.authn, g.principal}
	for _, p := range perms {
		chain = append(chain, auth.RequirePermission(p))
	}
	return chain
}

func (g routeGuards) paid(perms ...auth.Permission) []gin.HandlerFunc {
	return append(g.signedIn(perms...), g.activeGym)
}

func registerRoutes(r *gin.RouterGroup, h handlers, g routeGuards) {
	authGroup := r.Group("/auth", g.rateLimit)
	{
		authGroup.POST("/register", h.user.Register)
		authGroup.POST("/login", h.user.Login)
		authGroup.POST("/refresh", h.user.RefreshToken)
		authGroup.POST("/forgot-password", h.user.ForgotPassword)
		authGroup.POST("/reset-password", h.user.ResetPassword)
		authGroup.POST("/change-password", append(g.signedIn(), h.user.ChangePassword)...)
	}

	users := r.Group("/users")
	{
		users.GET("/me", append(g.signedIn(), h.user.GetMe)...)
		users.PUT("/me", append(g.signedIn(), h.user.UpdateMe)...)
		users.GET("", append(g.paid(auth.ManageStaff), h.user.ListStaff)...)
		users.POST("", append(g.paid(auth.ManageStaff), h.user.CreateStaff)...)
		users.DELETE("/:id", append(g.paid(auth.ManageStaff), h.user.DeleteStaff)...)
	}

	gyms := r.Group("/gyms")
	{
		gyms.GET("/me", append(g.signedIn(), h.gym.GetMyGym)...)
		gyms.PUT("/me", append(g.signedIn(auth.ManageGym), h.gym.UpdateMyGym)...)
	}

	billing := r.Group("/billing")
	{
		billing.GET("/plans", h.subscription.ListPlans)
		billing.POST("/mock-payment", append(g.signedIn(auth.ManageBilling), h.subscription.MockPayment)...)
		billing.GET("/invoices", append(g.signedIn(auth.ManageBilling), h.subscription.ListInvoices)...)
		billing.GET("/payment-method", append(g.signedIn(auth.ManageBilling), h.subscription.GetPaymentMethod)...)
		billing.PUT("/payment-method", append(g.signedIn(auth.ManageBilling), h.subscription.UpdatePaymentMethod)...)
		billing.GET("/subscription", append(g.paid(auth.ManageBilling), h.subscription.GetSubscription)...)
		billing.POST("/change-plan", append(g.paid(auth.ManageBilling), h.subscription.ChangePlan)...)
		billing.POST("/cancel-subscription", append(g.paid(auth.ManageBilling), h.subscription.CancelSubscription)...)
	}

	plans := r.Group("/membership-plans")
	{
		plans.GET("", append(g.paid(auth.ViewPlans), h.plan.ListPlans)...)
		plans.GET("/:id", append(g.paid(auth.ViewPlans), h.plan.GetPlan)...)
		plans.POST("", append(g.paid(auth.ManagePlans), h.plan.CreatePlan)...)
		plans.PUT("/:id", append(g.paid(auth.ManagePlans), h.plan.UpdatePlan)...)
		plans.DELETE("/:id", append(g.paid(auth.ManagePlans), h.plan.DeletePlan)...)
		plans.PATCH("/:id/toggle-status", append(g.paid(auth.ManagePlans), h.plan.ToggleStatus)...)
	}

	members := r.Group("/members", g.paid(auth.ManageMembers)...)
	{
		members.GET("", h.member.ListMembers)
		members.POST("", h.member.CreateMember)
		members.GET("/:id", h.member.GetMember)
		members.PUT("/:id", h.member.UpdateMember)
		members.DELETE("/:id", h.member.DeleteMember)
		members.PATCH("/:id/suspend", h.member.SuspendMember)
		members.PATCH("/:id/activate", h.member.ActivateMember)
	}

	attendanceGroup := r.Group("/attendance", g.paid(auth.RecordAttendance)...)
	{
		attendanceGroup.POST("/check-in", h.attendance.CheckIn)
		attendanceGroup.GET("/today", h.attendance.Today)
		attendanceGroup.GET("/range", h.attendance.Range)
		attendanceGroup.GET("/member/:id", h.attendance.MemberHistory)
		attendanceGroup.GET("/stats", h.attendance.Stats)
	}

	notifications := r.Group("/notifications", g.signedIn()...)
	{
		notifications.GET("", h.notification.List)
		notifications.POST("/:id/mark-read", h.notification.MarkRead)
	}

	dash := r.Group("/dashboard", g.paid(auth.ViewDashboard)...)
	{
		dash.GET("/stats", h.dashboard.GetStats)
		dash.GET("/recent-activity", h.dashboard.GetRecentActivity)
		dash.GET("/revenue-chart", h.dashboard.GetRevenueChart)
	}

	adminGroup := r.Group("/admin", g.signedIn(auth.PlatformAdmin)...)
	{
		adminGroup.GET("/stats", h.admin.GetStats)
		adminGroup.GET("/gyms", h.admin.ListGyms)
		adminGroup.GET("/gyms/:id", h.admin.GetGym)
		adminGroup.PATCH("/gyms/:id/toggle-status", h.admin.ToggleGym)
	}
}
