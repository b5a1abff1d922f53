package notification

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

func (m *MockService) Notify(ctx context.Context, gymID int, title, message, kind string) error {
	return m.Called(ctx, gymID, title, message, kind).Error(0)
}

func (m *MockService) List(ctx context.Context, gymID int) ([]Notification, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notification), args.Error(1)
}

func (m *MockService) MarkRead(ctx context.Context, gymID, id int) error {
	return m.Called(ctx, gymID, id).Error(0)
}

func notificationRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	gymID := 7

	r := gin.New()
	r.Use(func(c *gin.Context) {
		tenant.SetPrincipal(c, &tenant.Principal{UserID: 1, GymID: &gymID, Role: auth.RoleStaff})
		c.Next()
	})
	h := NewHandler(svc)
	r.GET("/notifications", h.List)
	r.POST("/notifications/:id/mark-read", h.MarkRead)
	return r
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	svc.On("List", mock.Anything, 7).Return([]Notification{{ID: 1, Title: "Welcome", Type: TypeInfo}}, nil)

	w := httptest.NewRecorder()
	notificationRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Welcome"`)
	assert.NotContains(t, w.Body.String(), "gym_id")
}

func TestHandler_MarkRead(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("MarkRead", mock.Anything, 7, 3).Return(nil)

		w := httptest.NewRecorder()
		notificationRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/3/mark-read", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Notification marked as read"}`, w.Body.String())
	})

	t.Run("Not found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("MarkRead", mock.Anything, 7, 9).Return(ErrNotificationNotFound)

		w := httptest.NewRecorder()
		notificationRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/9/mark-read", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Notification not found")
	})

	t.Run("Bad id", func(t *testing.T) {
		w := httptest.NewRecorder()
		notificationRouter(new(MockService)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/abc/mark-read", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
