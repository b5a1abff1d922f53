package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"gymcore/internal/apperr"
	"gymcore/internal/auth"
	"gymcore/internal/gym"
	"gymcore/internal/logger"
	"gymcore/internal/metrics"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

var (
	ErrInvalidCredentials = apperr.WithMessage(apperr.ErrUnauthenticated, "Incorrect email or password")
	ErrInvalidRefresh     = apperr.WithMessage(apperr.ErrUnauthenticated, "Invalid or expired refresh token")
	ErrUserNotFound       = apperr.WithMessage(apperr.ErrNotFound, "User not found")
	ErrGymEmailExists     = apperr.WithMessage(apperr.ErrConflict, "Gym email already registered")
	ErrEmailExists        = apperr.WithMessage(apperr.ErrConflict, "Email already registered")
	ErrWrongPassword      = apperr.WithMessage(apperr.ErrValidation, "Current password is incorrect")
	ErrInvalidResetToken  = apperr.WithMessage(apperr.ErrValidation, "Invalid or expired reset token")
	ErrDeleteSelf         = apperr.WithMessage(apperr.ErrInvalidState, "You cannot delete your own account")
	ErrSuperadminExists   = apperr.WithMessage(apperr.ErrConflict, "A platform administrator already exists")
)

// duplicateEmail turns a unique violation that slipped past the exists checks
// into the matching conflict error.
func duplicateEmail(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return err
	}
	if pqErr.Table == "gyms" || strings.HasPrefix(pqErr.Constraint, "gyms_") {
		return ErrGymEmailExists
	}
	return ErrEmailExists
}

// Mailer queues account emails. Delivery failures never fail the request.
type Mailer interface {
	SendWelcome(ctx context.Context, to, name, gymName string) error
	SendPasswordReset(ctx context.Context, to, name, token string) error
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*gym.Gym, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error)
	ChangePassword(ctx context.Context, userID int, req ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	GetMe(ctx context.Context, userID int) (*User, error)
	UpdateMe(ctx context.Context, userID int, req UpdateMeRequest) (*User, error)
	ListStaff(ctx context.Context, gymID int) ([]User, error)
	CreateStaff(ctx context.Context, gymID int, req CreateStaffRequest) (*User, error)
	DeleteStaff(ctx context.Context, gymID, callerID, userID int) error
	CreateSuperadmin(ctx context.Context, email, password, fullName string) (*User, error)
}

type service struct {
	repo          Repository
	gyms          gym.Repository
	mailer        Mailer
	accessSecret  string
	refreshSecret string
	now           func() time.Time
}

func NewService(repo Repository, gyms gym.Repository, mailer Mailer, accessSecret, refreshSecret string) Service {
	return &service{
		repo:          repo,
		gyms:          gyms,
		mailer:        mailer,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		now:           time.Now,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*gym.Gym, error) {
	exists, err := s.repo.GymEmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrGymEmailExists
	}

	exists, err = s.repo.EmailExists(ctx, req.AdminEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.AdminPassword)
	if err != nil {
		return nil, err
	}

	created, admin, err := s.repo.CreateTenant(ctx,
		NewGym{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Address:  req.Address,
			PlanType: req.PlanType,
		},
		NewUser{
			Email:        req.AdminEmail,
			PasswordHash: passwordHash,
			FullName:     req.AdminFullName,
			Role:         auth.RoleAdmin,
		},
	)
	if err != nil {
		return nil, duplicateEmail(err)
	}

	logger.Info("gym registered", "gym_id", created.ID, "admin_id", admin.ID, "plan_type", created.PlanType)
	metrics.RecordRegistration()

	if s.mailer != nil {
		if err := s.mailer.SendWelcome(ctx, admin.Email, admin.FullName, created.Name); err != nil {
			logger.WithError(err).Warn("failed to queue welcome email", "gym_id", created.ID)
		}
	}

	return created, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.RecordLogin("failed")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) || !user.IsActive {
		metrics.RecordLogin("failed")
		return nil, ErrInvalidCredentials
	}

	var g *gym.Gym
	if user.GymID != nil {
		g, err = s.gyms.GetByID(ctx, *user.GymID)
		if err != nil {
			return nil, err
		}
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		user.Identity(g != nil && g.IsActive),
		s.accessSecret,
		s.refreshSecret,
	)
	if err != nil {
		return nil, err
	}

	metrics.RecordLogin("success")

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(auth.AccessTokenTTL.Seconds()),
		User:         *user,
		Gym:          g,
	}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	claims, err := auth.ValidateRefreshToken(refreshToken, s.refreshSecret)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidRefresh
	}

	tenantActive := false
	if user.GymID != nil {
		g, err := s.gyms.GetByID(ctx, *user.GymID)
		if err != nil {
			return nil, err
		}
		tenantActive = g.IsActive
	}

	accessToken, err := auth.GenerateAccessToken(user.Identity(tenantActive), s.accessSecret)
	if err != nil {
		return nil, err
	}

	return &RefreshResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(auth.AccessTokenTTL.Seconds()),
	}, nil
}

func (s *service) ChangePassword(ctx context.Context, userID int, req ChangePasswordRequest) error {
	user, err := s.GetMe(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return ErrWrongPassword
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *service) ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResponse, error) {
	resp := &ForgotPasswordResponse{
		Message: "If the email exists, a password reset link has been sent",
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resp, nil
		}
		return nil, err
	}

	token, hash := auth.NewResetToken()
	if err := s.repo.SaveResetToken(ctx, user.ID, hash, s.now().Add(auth.ResetTokenTTL)); err != nil {
		return nil, err
	}

	logger.Info("password reset requested", "user_id", user.ID)
	if s.mailer != nil {
		if err := s.mailer.SendPasswordReset(ctx, user.Email, user.FullName, token); err != nil {
			logger.WithError(err).Warn("failed to queue reset email", "user_id", user.ID)
		}
	}
	resp.ResetToken = token
	return resp, nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	ok, err := s.repo.ConsumeResetToken(ctx, auth.HashResetToken(req.Token), passwordHash, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidResetToken
	}
	return nil
}

func (s *service) GetMe(ctx context.Context, userID int) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *service) UpdateMe(ctx context.Context, userID int, req UpdateMeRequest) (*User, error) {
	current, err := s.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != current.Email {
		exists, err := s.repo.EmailExists(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
	}

	user, err := s.repo.UpdateProfile(ctx, userID, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, duplicateEmail(err)
	}
	return user, nil
}

func (s *service) ListStaff(ctx context.Context, gymID int) ([]User, error) {
	return s.repo.ListByGym(ctx, gymID)
}

func (s *service) CreateStaff(ctx context.Context, gymID int, req CreateStaffRequest) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	role := req.Role
	if role == "" {
		role = auth.RoleStaff
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, NewUser{
		GymID:        &gymID,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Role:         role,
	})
	if err != nil {
		return nil, duplicateEmail(err)
	}
	return user, nil
}

func (s *service) DeleteStaff(ctx context.Context, gymID, callerID, userID int) error {
	if callerID == userID {
		return ErrDeleteSelf
	}

	deleted, err := s.repo.DeleteFromGym(ctx, gymID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// CreateSuperadmin creates the single tenant-less platform administrator.
func (s *service) CreateSuperadmin(ctx context.Context, email, password, fullName string) (*User, error) {
	exists, err := s.repo.SuperadminExists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSuperadminExists
	}

	taken, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, NewUser{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         auth.RoleSuperadmin,
	})
	if err != nil {
		return nil, duplicateEmail(err)
	}
	return user, nil
}
