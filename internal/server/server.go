package server

import (
	"context"
	"net/http"
	"time"

	"gymcore/internal/admin"
	"gymcore/internal/attendance"
	"gymcore/internal/auth"
	"gymcore/internal/config"
	"gymcore/internal/dashboard"
	"gymcore/internal/email"
	"gymcore/internal/gym"
	"gymcore/internal/member"
	"gymcore/internal/notification"
	"gymcore/internal/plan"
	"gymcore/internal/subscription"
	"gymcore/internal/tenant"
	"gymcore/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router  *gin.Engine
	http    *http.Server
	db      *sqlx.DB
	config  *config.Config
	limiter *RateLimiter
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLoggingMiddleware(), MetricsMiddleware(), corsMiddleware(cfg.CORSOrigins))

	gymRepo := gym.NewRepository(db)
	planRepo := plan.NewRepository(db)
	notificationService := notification.NewService(notification.NewRepository(db))

	h := handlers{
		user:         user.NewHandler(user.NewService(user.NewRepository(db), gymRepo, emailService, cfg.JWTSecret, cfg.RefreshSecret)),
		gym:          gym.NewHandler(gym.NewService(gymRepo)),
		subscription: subscription.NewHandler(subscription.NewService(subscription.NewRepository(db), notificationService, emailService)),
		plan:         plan.NewHandler(plan.NewService(planRepo)),
		member:       member.NewHandler(member.NewService(member.NewRepository(db), planRepo)),
		attendance:   attendance.NewHandler(attendance.NewService(attendance.NewRepository(db))),
		notification: notification.NewHandler(notificationService),
		dashboard:    dashboard.NewHandler(dashboard.NewService(dashboard.NewRepository(db))),
		admin:        admin.NewHandler(admin.NewService(admin.NewRepository(db))),
	}

	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)
	gate := tenant.NewGate(tenant.NewStore(db))

	router.GET("/health", Health(db))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	v1 := router.Group("/api/v1")
	registerRoutes(v1, h, routeGuards{
		authn:     auth.AuthMiddleware(cfg.JWTSecret),
		principal: tenant.ResolvePrincipal(gate),
		activeGym: tenant.RequireActiveGym(gate),
		rateLimit: RateLimitMiddleware(limiter),
	})

	return &Server{
		router:  router,
		db:      db,
		config:  cfg,
		limiter: limiter,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the rate limiter janitor.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
