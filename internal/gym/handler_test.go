package gym

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymcore/internal/auth"
	"gymcore/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, gymID int) (*Gym, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, gymID int, req UpdateGymRequest) (*Gym, error) {
	args := m.Called(ctx, gymID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func withPrincipal(p *tenant.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant.SetPrincipal(c, p)
		c.Next()
	}
}

func TestHandler_GetMyGym(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gymID := 7

	svc := new(MockService)
	svc.On("Get", mock.Anything, 7).Return(&Gym{ID: 7, Name: "Iron House"}, nil)

	r := gin.New()
	r.Use(withPrincipal(&tenant.Principal{UserID: 1, GymID: &gymID, Role: auth.RoleAdmin}))
	r.GET("/gyms/me", NewHandler(svc).GetMyGym)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gyms/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Iron House")
}

func TestHandler_GetMyGymWithoutTenant(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(withPrincipal(&tenant.Principal{UserID: 1, Role: auth.RoleSuperadmin}))
	r.GET("/gyms/me", NewHandler(new(MockService)).GetMyGym)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gyms/me", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateMyGym(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gymID := 7

	t.Run("Duplicate email", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Update", mock.Anything, 7, mock.AnythingOfType("gym.UpdateGymRequest")).Return(nil, ErrEmailTaken)

		r := gin.New()
		r.Use(withPrincipal(&tenant.Principal{UserID: 1, GymID: &gymID, Role: auth.RoleAdmin}))
		r.PUT("/gyms/me", NewHandler(svc).UpdateMyGym)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/gyms/me", bytes.NewBufferString(`{"email":"other@gym.io"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email already registered")
	})

	t.Run("Invalid email", func(t *testing.T) {
		r := gin.New()
		r.Use(withPrincipal(&tenant.Principal{UserID: 1, GymID: &gymID, Role: auth.RoleAdmin}))
		r.PUT("/gyms/me", NewHandler(new(MockService)).UpdateMyGym)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/gyms/me", bytes.NewBufferString(`{"email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation failed")
	})
}
