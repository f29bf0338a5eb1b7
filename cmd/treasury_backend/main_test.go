package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/treasury_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupSwaggerRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		isProduction bool
		wantStatus   int
	}{
		{name: "served outside production", isProduction: false, wantStatus: http.StatusOK},
		{name: "hidden in production", isProduction: true, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			setupSwaggerRoutes(r, &config.Config{IsProduction: tt.isProduction})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"/api/v1/sales"`)
				assert.Contains(t, w.Body.String(), "BearerAuth")
			}
		})
	}
}
