package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errors.New("redis down"))
	})
	router.GET("/answered", func(c *gin.Context) {
		_ = c.Error(errors.New("archive down"))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "try later"})
	})
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/silent", http.StatusInternalServerError, `{"error":"redis down"}`},
		{"/answered", http.StatusServiceUnavailable, `{"error":"try later"}`},
		{"/ok", http.StatusOK, `{"ok":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
