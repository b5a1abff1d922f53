package admin

import (
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

func (m *MockService) Stats(ctx context.Context) (*PlatformStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PlatformStats), args.Error(1)
}

func (m *MockService) ListGyms(ctx context.Context, f GymFilter) ([]GymSummary, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]GymSummary), args.Error(1)
}

func (m *MockService) GetGym(ctx context.Context, id int) (*GymDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymDetail), args.Error(1)
}

func (m *MockService) ToggleGym(ctx context.Context, actorID, id int) (*ToggleResponse, error) {
	args := m.Called(ctx, actorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ToggleResponse), args.Error(1)
}

func adminRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		tenant.SetPrincipal(c, &tenant.Principal{UserID: 1, Email: "root@gymcore.app", Role: auth.RoleSuperadmin})
		c.Next()
	})
	h := NewHandler(svc)
	r.GET("/admin/stats", h.GetStats)
	r.GET("/admin/gyms", h.ListGyms)
	r.GET("/admin/gyms/:id", h.GetGym)
	r.PATCH("/admin/gyms/:id/toggle-status", h.ToggleGym)
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestHandler_GetStats(t *testing.T) {
	svc := new(MockService)
	svc.On("Stats", mock.Anything).Return(&PlatformStats{TotalGyms: 3, ActiveGyms: 2, InactiveGyms: 1}, nil)

	w := serve(adminRouter(svc), http.MethodGet, "/admin/stats")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inactive_gyms":1`)
}

func TestHandler_ListGyms(t *testing.T) {
	svc := new(MockService)
	svc.On("ListGyms", mock.Anything, GymFilter{Skip: 10, Limit: 50, Status: "inactive", Search: "iron"}).Return([]GymSummary{}, nil)

	w := serve(adminRouter(svc), http.MethodGet, "/admin/gyms?skip=10&status_filter=inactive&search=iron")
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_GetGym(t *testing.T) {
	svc := new(MockService)
	svc.On("GetGym", mock.Anything, 99).Return(nil, ErrGymNotFound)

	w := serve(adminRouter(svc), http.MethodGet, "/admin/gyms/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Gym not found")
}

func TestHandler_ToggleGym(t *testing.T) {
	svc := new(MockService)
	svc.On("ToggleGym", mock.Anything, 1, 7).Return(&ToggleResponse{ID: 7, IsActive: true, Message: "Gym activated"}, nil)

	w := serve(adminRouter(svc), http.MethodPatch, "/admin/gyms/7/toggle-status")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gym activated")
}
