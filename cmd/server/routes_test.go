package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streaming-service.backend/internal/interfaces/http/handlers"
	"streaming-service.backend/internal/interfaces/http/middleware"
	"streaming-service.backend/pkg/jwt"
)

func newTestRouter(svc *jwt.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		reportHandler:  &handlers.ReportHandler{},
		adminHandler:   &handlers.AdminHandler{},
		authMiddleware: middleware.AuthMiddleware(svc),
	})
	return r
}

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	r := newTestRouter(jwt.NewJWTService("secret", time.Minute))

	expects := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/reports/avg-release-year"},
		{"GET", "/api/v1/reports/user-statistics"},
		{"GET", "/api/v1/reports/genre-ratings"},
		{"GET", "/api/v1/reports/table-columns"},
		{"GET", "/api/v1/reports/director-ratings"},
		{"GET", "/api/v1/reports/database-size"},
		{"GET", "/api/v1/reports/users-by-subscription/:type"},
		{"PUT", "/api/v1/admin/users/:id/subscription"},
		{"POST", "/api/v1/admin/reviews/table"},
		{"POST", "/api/v1/admin/reviews"},
		{"POST", "/api/v1/admin/seed"},
		{"POST", "/api/v1/admin/truncate"},
		{"GET", "/api/v1/admin/seed-runs"},
		{"GET", "/metrics"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		assert.True(t, found, "route %s %s not registered", exp.method, exp.path)
	}
}

func TestAdminRoutes_RequireAdminToken(t *testing.T) {
	svc := jwt.NewJWTService("secret", time.Minute)
	r := newTestRouter(svc)
	viewer, err := svc.GenerateAccessToken("viewer", "VIEWER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/seed", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/truncate", nil)
	req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+viewer)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestApplyCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	applyCORSMiddleware(r)
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRegisterHealthRoute(t *testing.T) {
	r := newTestRouter(jwt.NewJWTService("secret", time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"status": "ok", "service": serviceName, "version": serviceVersion}, body)
}

func TestRegisterMetricsRoute(t *testing.T) {
	r := newTestRouter(jwt.NewJWTService("secret", time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
