package attendance

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymcore/internal/apperr"
	"gymcore/internal/auth"
	"gymcore/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CheckIn(ctx context.Context, gymID int, dni string) (*Record, error) {
	args := m.Called(ctx, gymID, dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Record), args.Error(1)
}

func (m *MockService) Today(ctx context.Context, gymID int) ([]Record, error) {
	args := m.Called(ctx, gymID)
	return args.Get(0).([]Record), args.Error(1)
}

func (m *MockService) Range(ctx context.Context, gymID, days int) ([]Record, error) {
	args := m.Called(ctx, gymID, days)
	return args.Get(0).([]Record), args.Error(1)
}

func (m *MockService) MemberHistory(ctx context.Context, gymID, memberID, limit int) ([]Record, error) {
	args := m.Called(ctx, gymID, memberID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Record), args.Error(1)
}

func (m *MockService) Stats(ctx context.Context, gymID int) (*Stats, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Stats), args.Error(1)
}

func attendanceRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	gymID := 7

	r := gin.New()
	r.Use(func(c *gin.Context) {
		tenant.SetPrincipal(c, &tenant.Principal{UserID: 2, GymID: &gymID, Role: auth.RoleStaff})
		c.Next()
	})
	h := NewHandler(svc)
	r.POST("/attendance/check-in", h.CheckIn)
	r.GET("/attendance/today", h.Today)
	r.GET("/attendance/range", h.Range)
	r.GET("/attendance/member/:id", h.MemberHistory)
	r.GET("/attendance/stats", h.Stats)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandler_CheckIn(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Admitted",
			body: `{"dni":"30111222"}`,
			setup: func(s *MockService) {
				s.On("CheckIn", mock.Anything, 7, "30111222").Return(&Record{ID: 100, MemberName: "Ana Torres"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"member_name":"Ana Torres"`,
		},
		{
			name: "Expired membership",
			body: `{"dni":"30111222"}`,
			setup: func(s *MockService) {
				s.On("CheckIn", mock.Anything, 7, "30111222").
					Return(nil, apperr.WithMessage(apperr.ErrInvalidState, "Membership of Ana Torres has expired"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"invalid_state"`,
		},
		{
			name: "Unknown member",
			body: `{"dni":"1"}`,
			setup: func(s *MockService) {
				s.On("CheckIn", mock.Anything, 7, "1").Return(nil, apperr.WithMessage(apperr.ErrNotFound, "No member found with DNI 1"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "No member found with DNI 1",
		},
		{
			name:       "Missing DNI",
			body:       `{}`,
			setup:      func(*MockService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodPost, "/attendance/check-in", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			attendanceRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_Range(t *testing.T) {
	svc := new(MockService)
	svc.On("Range", mock.Anything, 7, 7).Return([]Record{}, nil)
	svc.On("Range", mock.Anything, 7, 30).Return([]Record{{ID: 1}}, nil)
	r := attendanceRouter(svc)

	assert.Equal(t, http.StatusOK, get(r, "/attendance/range").Code)
	w := get(r, "/attendance/range?days=30")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
	svc.AssertExpectations(t)
}

func TestHandler_Today(t *testing.T) {
	svc := new(MockService)
	svc.On("Today", mock.Anything, 7).Return([]Record{}, nil)

	w := get(attendanceRouter(svc), "/attendance/today")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestHandler_MemberHistory(t *testing.T) {
	svc := new(MockService)
	svc.On("MemberHistory", mock.Anything, 7, 4, 10).Return([]Record{{ID: 3}}, nil)
	svc.On("MemberHistory", mock.Anything, 7, 5, 25).Return(nil, ErrMemberNotFound)
	r := attendanceRouter(svc)

	assert.Equal(t, http.StatusOK, get(r, "/attendance/member/4").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/attendance/member/5?limit=25").Code)
}

func TestHandler_Stats(t *testing.T) {
	svc := new(MockService)
	svc.On("Stats", mock.Anything, 7).Return(&Stats{TodayCount: 1, WeekCount: 5, MonthCount: 12}, nil)

	w := get(attendanceRouter(svc), "/attendance/stats")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"today_count":1,"week_count":5,"month_count":12}`, w.Body.String())
}
