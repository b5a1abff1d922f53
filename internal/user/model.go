package user

import (
	"time"

	"gymcore/internal/auth"
	"gymcore/internal/gym"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	GymID        *int      `db:"gym_id" json:"gym_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"hashed_password" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         auth.Role `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (u *User) Identity(tenantActive bool) auth.Identity {
	return auth.Identity{
		UserID:       u.ID,
		Email:        u.Email,
		GymID:        u.GymID,
		Role:         u.Role,
		TenantActive: tenantActive,
	}
}

// NewGym is the tenant half of a registration.
type NewGym struct {
	Name     string
	Email    string
	Phone    *string
	Address  *string
	PlanType string
}

type NewUser struct {
	GymID        *int
	Email        string
	PasswordHash string
	FullName     string
	Role         auth.Role
}

type RegisterRequest struct {
	Name          string  `json:"name" binding:"required,max=255"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	PlanType      string  `json:"plan_type" binding:"required,oneof=basic pro elite"`
	AdminEmail    string  `json:"admin_email" binding:"required,email"`
	AdminPassword string  `json:"admin_password" binding:"required,min=8"`
	AdminFullName string  `json:"admin_full_name" binding:"required,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type" example:"bearer"`
	ExpiresIn    int      `json:"expires_in" example:"1800"`
	User         User     `json:"user"`
	Gym          *gym.Gym `json:"gym"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int    `json:"expires_in" example:"1800"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordResponse carries the reset token directly while there is no
// mail template for it.
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"reset_token,omitempty"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UpdateMeRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

type CreateStaffRequest struct {
	Email    string    `json:"email" binding:"required,email"`
	Password string    `json:"password" binding:"required,min=8"`
	FullName string    `json:"full_name" binding:"required,max=255"`
	Role     auth.Role `json:"role" binding:"omitempty,oneof=admin staff"`
}
