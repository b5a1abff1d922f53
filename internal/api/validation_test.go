package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkInPayload struct {
	DNI      string `json:"dni" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	PlanType string `json:"plan_type" binding:"omitempty,oneof=basic pro elite"`
}

func bindRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var req checkInPayload
		if !BindJSON(c, &req) {
			return
		}
		c.JSON(http.StatusOK, req)
	})
	return r
}

func TestBindJSON(t *testing.T) {
	t.Run("Validation errors are listed per field", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"email":"nope","plan_type":"gold"}`))
		req.Header.Set("Content-Type", "application/json")
		bindRouter().ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "validation_error", body.Code)
		require.Len(t, body.Details, 3)
		assert.Equal(t, "dni", body.Details[0].Field)
		assert.Equal(t, "dni is required", body.Details[0].Message)
		assert.Equal(t, "email", body.Details[1].Field)
		assert.Equal(t, "email must be a valid email address", body.Details[1].Message)
		assert.Equal(t, "plan_type", body.Details[2].Field)
		assert.Equal(t, "oneof", body.Details[2].Tag)
		assert.Equal(t, "plan_type must be one of: basic pro elite", body.Details[2].Message)
	})

	t.Run("Nested and untagged fields", func(t *testing.T) {
		type address struct {
			City string `json:"city" binding:"required"`
		}
		type payload struct {
			Address address `json:"address"`
			Note    string  `binding:"required"`
		}

		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/", func(c *gin.Context) {
			var req payload
			if BindJSON(c, &req) {
				c.Status(http.StatusOK)
			}
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"address":{}}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Details, 2)
		assert.Equal(t, "city", body.Details[0].Field)
		assert.Equal(t, "Note", body.Details[1].Field)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"dni": `))
		req.Header.Set("Content-Type", "application/json")
		bindRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body")
	})

	t.Run("Valid payload", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"dni":"30111222"}`))
		req.Header.Set("Content-Type", "application/json")
		bindRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
